package models

import "fmt"

// CustomError is a coded, caller-facing error
type CustomError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// WithDetail wraps a catalogue error with extra human-readable detail while
// keeping errors.Is matching against the catalogue entry.
func (e *CustomError) WithDetail(detail string) error {
	return &detailedError{base: e, detail: detail}
}

type detailedError struct {
	base   *CustomError
	detail string
}

func (e *detailedError) Error() string {
	return fmt.Sprintf("%s: %s", e.base.Message, e.detail)
}

func (e *detailedError) Unwrap() error {
	return e.base
}

// ConflictError reports a duplicate reportNumber, carrying the identity of
// the record that already holds it.
type ConflictError struct {
	ReportNumber string
	ExistingID   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("credit report %s already exists as %s", e.ReportNumber, e.ExistingID)
}
