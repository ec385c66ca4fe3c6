package watcher

import "errors"

var (
	ErrWatch  = errors.New("watcher: failed to watch path")
	ErrClosed = errors.New("watcher: closed")
)
