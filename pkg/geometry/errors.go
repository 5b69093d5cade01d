package geometry

import "errors"

var (
	ErrInvalidRadius = errors.New("geometry: sphere radius must be finite and non-zero")
	ErrInvalidCamera = errors.New("geometry: invalid camera configuration")
)
