package services

import (
	"errors"

	"github.com/dmitrijs2005/phishguard/internal/classifier"
)

// Registration outcomes.
var (
	ErrMissingFields    = errors.New("missing fields")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrPasswordTooShort = errors.New("password too short")
	ErrPasswordTooLong  = errors.New("password too long")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrDuplicateUser    = errors.New("duplicate user")
)

// Login and infrastructure outcomes.
var (
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password. Login itself reports these as (false, nil); the error exists
	// so callers have a value to show.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Detection outcomes.
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrUnknownKind    = errors.New("unknown detection kind")
	ErrModelFailure   = errors.New("model failure")
	ErrHTMLProcessing = errors.New("html processing failed")
)

const (
	MsgRegistered = "Registration successful"
	MsgLoggedIn   = "Login successful"
)

var messages = []struct {
	err error
	msg string
}{
	{ErrMissingFields, "All fields are required"},
	{ErrPasswordMismatch, "Passwords do not match"},
	{ErrPasswordTooShort, "Password must be at least 6 characters"},
	{ErrPasswordTooLong, "Password must be at most 72 bytes"},
	{ErrInvalidEmail, "Invalid email format"},
	{ErrDuplicateUser, "Username or Email already exists"},
	{ErrInvalidCredentials, "Invalid username/email or password"},
	{ErrStorageUnavailable, "Service temporarily unavailable, please try again later"},
	{ErrEmptyInput, "Nothing to check: input is empty"},
	{ErrUnknownKind, "Unknown detection type"},
	{classifier.ErrUnavailable, "Detection model is unreachable, please try again later"},
	{ErrModelFailure, "Detection failed"},
	{ErrHTMLProcessing, "Could not read the website HTML"},
}

// Message returns the stable user-facing text for err. Unknown errors get a
// generic text so internal details never reach the user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "Something went wrong"
}
