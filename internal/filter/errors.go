package filter

import "errors"

// ErrInvalidKernelSize is returned when a blur is requested with a kernel
// size (window radius) below 1.
var ErrInvalidKernelSize = errors.New("filter: kernel size must be >= 1")
