package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/wellnesshub/wellnesshub-cli/internal/errors"
)

func TestFormatErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		context  string
		contains []string
	}{
		{
			name:     "nil error",
			err:      nil,
			context:  "Request failed",
			contains: nil,
		},
		{
			name:     "backend error includes hint",
			err:      apierrors.NewBackendError("invalid category"),
			context:  "Request failed",
			contains: []string{"Request failed", "invalid category", "Hint:"},
		},
		{
			name:     "network error includes hint",
			err:      apierrors.NewNetworkError("/chat", errors.New("connection refused")),
			context:  "Request failed",
			contains: []string{"connection refused", "Check that it is running"},
		},
		{
			name:     "api error includes status",
			err:      apierrors.NewAPIError(502, "/chat", "bad gateway"),
			context:  "Request failed",
			contains: []string{"HTTP Status: 502"},
		},
		{
			name:     "timeout error includes hint",
			err:      apierrors.NewTimeoutError("deadline exceeded"),
			context:  "Request failed",
			contains: []string{"timed out"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorMessage(tt.err, tt.context)

			if tt.err == nil {
				if got != "" {
					t.Errorf("formatErrorMessage(nil) = %q, want empty", got)
				}
				return
			}

			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("formatErrorMessage() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestGetTerminalWidth_Default(t *testing.T) {
	// Test runners have no TTY on stdout, so the default applies
	if width := getTerminalWidth(); width <= 0 {
		t.Errorf("getTerminalWidth() = %d, want positive", width)
	}
}
