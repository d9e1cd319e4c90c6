package passgen

import "errors"

var (
	// ErrInvalidConstraints wraps every constraint validation failure, so
	// callers can match the whole family with a single errors.Is check.
	ErrInvalidConstraints = errors.New("invalid password constraints")

	ErrNoClassSelected          = errors.New("at least one character class must be selected")
	ErrLengthTooShort           = errors.New("password length must be at least 4 characters")
	ErrLengthTooShortForClasses = errors.New("password length cannot fit one character per selected class")
	ErrInvalidCount             = errors.New("password count must be at least 1")
	ErrEntropyFailure           = errors.New("failed to read from the entropy source")
)
