package sqlite

import "errors"

// ErrClosed is returned by operations on a closed repository.
var ErrClosed = errors.New("sqlite repository closed")
