package repository

import "errors"

// ErrNotFound is returned when the challenge addressed by id is not the active one.
var ErrNotFound = errors.New("otp challenge not found")
