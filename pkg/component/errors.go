package component

import "errors"

var (
	ErrNoRenderer      = errors.New("component: renderer is required")
	ErrNoDocument      = errors.New("component: document is required")
	ErrNoMessageLoader = errors.New("component: message loader is required")
)
