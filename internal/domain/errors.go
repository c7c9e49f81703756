package domain

import (
	"errors"
)

// Sentinel errors shared by services so handlers can map outcomes to HTTP
// statuses with errors.Is instead of matching message strings.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDependency   = errors.New("dependency failure")
)
