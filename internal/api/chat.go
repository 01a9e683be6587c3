package api

import (
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/wellnesshub/wellnesshub-cli/internal/errors"
	"github.com/wellnesshub/wellnesshub-cli/internal/models"
)

// SendChat submits one query tagged with a category and returns the
// assistant's response text.
//
// The backend replies with a JSON object carrying either a `response`
// field or an `error` field; the latter is returned as a BackendError
// regardless of HTTP status. Transport failures map to NetworkError or
// TimeoutError, and unparseable bodies to ParseError.
func (c *Client) SendChat(query, category string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("query cannot be empty")
	}

	if c.IsClosed() {
		return "", fmt.Errorf("client is closed")
	}

	endpoint := c.ServerURL() + models.EndpointChat

	req, err := http.NewRequest(
		http.MethodPost,
		endpoint,
		strings.NewReader(encodeChatForm(query, category)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if stderrors.As(err, &netErr) && netErr.Timeout() {
			return "", apierrors.NewTimeoutError(err.Error())
		}
		return "", apierrors.NewNetworkError(endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkError(endpoint, err)
	}

	return parseChatResponse(resp.StatusCode, endpoint, body)
}

// encodeChatForm builds the form body. Field order is fixed and spaces
// are escaped as %20.
func encodeChatForm(query, category string) string {
	return "query=" + escapeFormValue(query) + "&category=" + escapeFormValue(category)
}

func escapeFormValue(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// parseChatResponse maps a chat response body to text or a typed error
func parseChatResponse(statusCode int, endpoint string, body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError(fmt.Sprintf("response body is not valid JSON: %q", truncateBody(body)))
	}

	parsed := gjson.ParseBytes(body)

	// The backend reports application failures through the `error`
	// field, with a non-200 status. Check it first so a failed request
	// surfaces the server's message rather than a generic status error.
	if errField := parsed.Get("error"); errField.Exists() {
		return "", apierrors.NewBackendError(errField.String())
	}

	if respField := parsed.Get("response"); respField.Exists() {
		return respField.String(), nil
	}

	if statusCode != http.StatusOK {
		return "", apierrors.NewAPIError(statusCode, endpoint, "chat request failed")
	}

	return "", apierrors.NewParseError("response carries neither `response` nor `error` field")
}

// truncateBody limits a response body excerpt used in error messages
func truncateBody(body []byte) string {
	const maxLen = 256
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}
	return string(body)
}
