package state

import "time"

const (
	timeout = time.Second
	tick    = time.Millisecond
)
