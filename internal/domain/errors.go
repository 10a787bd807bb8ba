package domain

import "errors"

var (
	ErrNoPhones      = errors.New("no phone numbers given")
	ErrNoMessage     = errors.New("message is empty")
	ErrCommaInPhone  = errors.New("phone number contains a comma")
	ErrBlankPhone    = errors.New("phone number is blank")
	ErrInvalidBase64 = errors.New("message parameter is not valid base64")
	ErrInvalidUTF8   = errors.New("decoded message is not valid UTF-8")
)

// ValidationError is returned when compose input is rejected.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DecodeError is returned when dispatch parameters cannot be decoded.
type DecodeError struct {
	Param string
	Err   error
}

func (e *DecodeError) Error() string {
	return "decode " + e.Param + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
