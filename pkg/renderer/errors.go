package renderer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig   = errors.New("renderer: invalid configuration")
	ErrRenderTimeout   = errors.New("renderer: timed out waiting for rows")
	ErrInterrupted     = errors.New("renderer: interrupted while rendering")
	ErrIncompleteFrame = errors.New("renderer: frame rows missing or duplicated")
)

// RowError reports a row that kept failing after all retries
type RowError struct {
	Row      int
	Attempts int
	Err      error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("renderer: row %d failed after %d attempt(s): %v", e.Row, e.Attempts, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
