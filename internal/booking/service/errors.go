package service

import "errors"

// Service-level sentinels. The messages are client-facing contract: failure
// modes that would leak account existence or token state are collapsed into a
// single uniform message per operation, and the HTTP layer serializes them
// verbatim.
var (
	ErrBadEmailLogin     = errors.New("Incorrect email or password")
	ErrBadPhoneLogin     = errors.New("Incorrect telephone or password")
	ErrUnauthorized      = errors.New("Please authenticate")
	ErrForbidden         = errors.New("Forbidden")
	ErrNotFound          = errors.New("Not found")
	ErrPasswordReset     = errors.New("Password reset failed")
	ErrEmailVerification = errors.New("Email verification failed")
	ErrEmailTaken        = errors.New("Email already taken")
	ErrTelephoneTaken    = errors.New("Telephone already taken")
	ErrCalendarExists    = errors.New("Calendar already exists")
	ErrInvalidOTP        = errors.New("Invalid OTP")
	ErrOTPExpired        = errors.New("OTP expired")
)
