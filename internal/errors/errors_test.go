package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestBackendError(t *testing.T) {
	err := NewBackendError("bad request")

	want := "backend error: bad request"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !IsBackendError(err) {
		t.Error("IsBackendError should be true for BackendError")
	}
	if got := BackendMessage(err); got != "bad request" {
		t.Errorf("BackendMessage() = %q, want %q", got, "bad request")
	}
}

func TestBackendError_EmptyMessage(t *testing.T) {
	err := NewBackendError("")
	if err.Error() != "backend error" {
		t.Errorf("Error() = %q, want %q", err.Error(), "backend error")
	}
}

func TestBackendError_Wrapped(t *testing.T) {
	err := fmt.Errorf("request failed: %w", NewBackendError("overloaded"))

	if !IsBackendError(err) {
		t.Error("IsBackendError should see through wrapping")
	}
	if got := BackendMessage(err); got != "overloaded" {
		t.Errorf("BackendMessage() = %q, want %q", got, "overloaded")
	}
}

func TestNetworkError(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewNetworkError("http://localhost:8000/chat", inner)

	if !IsNetworkError(err) {
		t.Error("IsNetworkError should be true for NetworkError")
	}
	if !errors.Is(err, inner) {
		t.Error("NetworkError should unwrap to the transport error")
	}
	if IsBackendError(err) {
		t.Error("NetworkError should not be a BackendError")
	}
}

func TestTimeoutError(t *testing.T) {
	err := NewTimeoutError("after 30s")

	if !IsTimeoutError(err) {
		t.Error("IsTimeoutError should be true for TimeoutError")
	}

	want := "request timed out: after 30s"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if NewTimeoutError("").Error() != "request timed out" {
		t.Error("empty TimeoutError should use default message")
	}
}

func TestAPIError(t *testing.T) {
	err := NewAPIError(503, "/chat", "service unavailable")

	if got := GetHTTPStatus(err); got != 503 {
		t.Errorf("GetHTTPStatus() = %d, want 503", got)
	}

	want := "API error [503] at /chat: service unavailable"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestGetHTTPStatus_NonAPIError(t *testing.T) {
	if got := GetHTTPStatus(errors.New("plain")); got != 0 {
		t.Errorf("GetHTTPStatus() = %d, want 0", got)
	}
	if got := GetHTTPStatus(nil); got != 0 {
		t.Errorf("GetHTTPStatus(nil) = %d, want 0", got)
	}
}

func TestParseError_Is(t *testing.T) {
	err := NewParseError("body is not JSON")

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("ParseError should match ErrInvalidResponse")
	}
	if !IsParseError(err) {
		t.Error("IsParseError should be true for ParseError")
	}
	if IsParseError(errors.New("other")) {
		t.Error("IsParseError should be false for unrelated errors")
	}
}

func TestHelpers_Nil(t *testing.T) {
	if IsBackendError(nil) || IsNetworkError(nil) || IsTimeoutError(nil) || IsParseError(nil) {
		t.Error("type helpers should be false for nil")
	}
	if BackendMessage(nil) != "" {
		t.Error("BackendMessage(nil) should be empty")
	}
}
