package dom

import "errors"

var (
	ErrUnknownManipulator = errors.New("dom: unknown manipulator")
	ErrNoMatch            = errors.New("dom: selector matched no elements")
	ErrParse              = errors.New("dom: failed to parse document")
)
