// Package models contains the core data types for the WellnessHub chat client.
package models

import "time"

// Endpoint paths on the WellnessHub backend
const (
	EndpointChat = "/chat"
)

// DefaultServerURL is the backend used when no server is configured
const DefaultServerURL = "http://localhost:8000"

// DefaultRevealInterval is the delay between revealed characters when
// animating an assistant response.
const DefaultRevealInterval = 20 * time.Millisecond

// DefaultHeaders returns the standard headers sent with chat requests
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
		"Accept":       "application/json",
		"User-Agent":   "wellnesshub-cli",
	}
}
