package profiles

import "errors"

var (
	ErrInvalidProfilesFile = errors.New("invalid profiles file")
	ErrProfileNotFound     = errors.New("profile not found")
)
