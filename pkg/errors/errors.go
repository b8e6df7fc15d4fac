// Package errors provides the structured error type the CLI wraps every
// failure in before printing it or encoding it as JSON. Core packages
// (internal/gf2n, internal/shamir) never import this package: they return
// plain sentinel errors, and only the CLI boundary attaches codes, exit
// statuses, and user-facing suggestions.
//
//nolint:revive // package name intentionally shadows stdlib errors
package errors

import (
	"errors"
	"fmt"
)

// Code identifies the category of a HorcruxError, stable across releases so
// scripts consuming --output json can match on it.
type Code string

const (
	CodeInvalidInput  Code = "invalid_input"
	CodeNotFound      Code = "not_found"
	CodeInternal      Code = "internal"
	CodeConfig        Code = "config"
	CodeInsufficient  Code = "insufficient_shares"
)

// ExitCode maps a Code to the process exit status the teacher's CLIs use:
// 0 success, 1 general error, 2 invalid input, 4 not found.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeInsufficient:
		return 2
	case CodeNotFound:
		return 4
	default:
		return 1
	}
}

// HorcruxError is the structured error the CLI attaches to every failure
// before printing it, so that --output json always has a machine-readable
// shape to report.
type HorcruxError struct {
	Code       Code
	Message    string
	Details    string
	Suggestion string
	Cause      error
}

func (e *HorcruxError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *HorcruxError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit status this error should produce.
func (e *HorcruxError) ExitCode() int {
	return e.Code.ExitCode()
}

// New creates a HorcruxError with no wrapped cause.
func New(code Code, message string) *HorcruxError {
	return &HorcruxError{Code: code, Message: message}
}

// Wrap attaches a code and message to an existing error, preserving it as
// the Cause for errors.Is/As and %w-style unwrapping.
func Wrap(code Code, message string, cause error) *HorcruxError {
	return &HorcruxError{Code: code, Message: message, Cause: cause}
}

// WithDetails returns a copy of e with Details set, for adding
// operation-specific context (e.g. which file, which share) without
// changing the message shown for a given Code.
func (e *HorcruxError) WithDetails(details string) *HorcruxError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithSuggestion returns a copy of e with a user-facing remediation hint
// attached.
func (e *HorcruxError) WithSuggestion(suggestion string) *HorcruxError {
	cp := *e
	cp.Suggestion = suggestion
	return &cp
}

// Is supports errors.Is comparisons against another *HorcruxError by Code,
// so callers can write errors.Is(err, errors.New(CodeNotFound, "")) without
// caring about Message/Details.
func (e *HorcruxError) Is(target error) bool {
	var other *HorcruxError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}
