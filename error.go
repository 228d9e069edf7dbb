package listing

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// EPARSE means the page did not match any known template, or matched it
	// in an inconsistent way. It usually means the template has drifted.
	EPARSE = "parse"

	// ERANGE means the caller asked for a page past the end of the listing.
	ERANGE = "out_of_range"

	// EASSERT means a required composite field lacked its delimiter.
	EASSERT = "assert"
)

// MaxExcerpt is the maximum number of bytes of page text kept on an Error.
const MaxExcerpt = 512

// Error represents an application-specific error.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Excerpt holds the head of the offending page text for diagnostics.
	Excerpt string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("listing error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ParseFailure returns an EPARSE error carrying a bounded excerpt of body.
func ParseFailure(body string, format string, args ...any) *Error {
	e := Errorf(EPARSE, format, args...)
	e.Excerpt = excerpt(body)
	return e
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error."
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorExcerpt unwraps an application error and returns its page excerpt.
func ErrorExcerpt(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Excerpt
	}
	return ""
}

func excerpt(body string) string {
	if len(body) <= MaxExcerpt {
		return body
	}
	n := MaxExcerpt
	for n > 0 && !utf8.RuneStart(body[n]) {
		n--
	}
	return body[:n]
}
