package octav

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the generic non-2xx response error. Body holds the parsed JSON
// object when the response body was JSON, otherwise the raw text.
type APIError struct {
	Status  int
	Message string
	Body    any
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("octav: API error %d: %s", e.Status, e.Message)
	}
	return "octav: " + e.Message
}

// AuthenticationError maps HTTP 401: the API key is invalid or expired.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "octav: authentication failed: " + e.Message
}

// InsufficientCreditsError maps HTTP 402. CreditsNeeded is a server hint and
// may be zero when the API did not include one.
type InsufficientCreditsError struct {
	Message       string
	CreditsNeeded int
}

func (e *InsufficientCreditsError) Error() string {
	if e.CreditsNeeded > 0 {
		return fmt.Sprintf("octav: insufficient credits (need %d): %s", e.CreditsNeeded, e.Message)
	}
	return "octav: insufficient credits: " + e.Message
}

// RateLimitError maps HTTP 429. RetryAfter is in seconds; zero means the API
// gave no hint.
type RateLimitError struct {
	Message    string
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("octav: rate limited (retry after %ds): %s", e.RetryAfter, e.Message)
	}
	return "octav: rate limited: " + e.Message
}

// errorFromResponse converts a non-2xx response into the typed error taxonomy.
func errorFromResponse(status int, body []byte) error {
	msg := fmt.Sprintf("API error %d", status)

	var parsed map[string]any
	var bodyVal any = string(body)
	if err := json.Unmarshal(body, &parsed); err == nil {
		bodyVal = parsed
		if m, ok := parsed["message"].(string); ok && m != "" {
			msg = m
		}
	}

	switch status {
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: msg}
	case http.StatusPaymentRequired:
		e := &InsufficientCreditsError{Message: msg}
		if parsed != nil {
			if n, ok := parsed["creditsNeeded"].(float64); ok {
				e.CreditsNeeded = int(n)
			}
		}
		return e
	case http.StatusTooManyRequests:
		e := &RateLimitError{Message: msg}
		if parsed != nil {
			if n, ok := parsed["retryAfter"].(float64); ok {
				e.RetryAfter = int(n)
			}
		}
		return e
	default:
		return &APIError{Status: status, Message: msg, Body: bodyVal}
	}
}
