package discord

import "fmt"

// FetchError is returned when the invite endpoint could not be reached or
// answered with a non-success status
type FetchError struct {
	Code       string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch invite %q: %v", e.Code, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("fetch invite %q: status %d: %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch invite %q: status %d", e.Code, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when the invite body does not match the expected shape
type DecodeError struct {
	Code string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode invite %q: %v", e.Code, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
