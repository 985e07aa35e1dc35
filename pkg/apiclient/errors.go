package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotPDF = errors.New("apiclient: cv must be a .pdf file")
)

// Error is returned for every non-2xx response.
type Error struct {
	Status int
	// Message is the server supplied message, empty when the body carried none.
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// MessageOr returns the server supplied message carried by err, or fallback.
func MessageOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsStatus reports whether err is an *Error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type errorBody struct {
	Message json.RawMessage `json:"message"`
}

// parseErrorMessage extracts "message" from a JSON body. The API reports
// validation failures as an array of strings.
func parseErrorMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Message) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(parsed.Message, &single); err == nil {
		return strings.TrimSpace(single)
	}
	var many []string
	if err := json.Unmarshal(parsed.Message, &many); err == nil {
		return strings.TrimSpace(strings.Join(many, "; "))
	}
	return ""
}
