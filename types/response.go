package types

import (
	"fmt"
	"strings"

	"github.com/icodeforyou/genability-go/slice"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ResponseError is one entry of the envelope's errors array.
type ResponseError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	ObjectName   string `json:"objectName,omitempty"`
	PropertyName string `json:"propertyName,omitempty"`
}

func (re ResponseError) String() string {
	if re.PropertyName != "" {
		return fmt.Sprintf("%s (%s): %s", re.Code, re.PropertyName, re.Message)
	}
	return fmt.Sprintf("%s: %s", re.Code, re.Message)
}

// Response is the envelope wrapping every Genability reply:
//
//	{"status": "success", "type": "Account", "count": 1, "results": [...]}
//
// A non-success status is a functional error reported by the API, not a
// transport failure, and callers must check it before trusting Results.
type Response[T any] struct {
	Status    string          `json:"status"`
	Type      string          `json:"type"`
	Count     int             `json:"count"`
	PageStart *int            `json:"pageStart,omitempty"`
	PageCount *int            `json:"pageCount,omitempty"`
	Results   []T             `json:"results"`
	Errors    []ResponseError `json:"errors,omitempty"`
}

func (r *Response[T]) IsSuccess() bool {
	return r != nil && r.Status == StatusSuccess
}

// First returns the first result, if any.
func (r *Response[T]) First() (T, bool) {
	var zero T
	if r == nil || len(r.Results) == 0 {
		return zero, false
	}
	return r.Results[0], true
}

// Err converts a non-success envelope into an *APIError. It returns nil on
// success.
func (r *Response[T]) Err() error {
	if r.IsSuccess() {
		return nil
	}
	if r == nil {
		return &APIError{Status: "missing response"}
	}
	return &APIError{Status: r.Status, Type: r.Type, Errors: r.Errors}
}

// APIError is a functional failure reported through the envelope status.
type APIError struct {
	Status string
	Type   string
	Errors []ResponseError
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("genability returned status %q for %s", e.Status, e.Type)
	}
	messages := slice.Map(e.Errors, ResponseError.String)
	return fmt.Sprintf("genability returned status %q for %s: %s", e.Status, e.Type, strings.Join(messages, "; "))
}
