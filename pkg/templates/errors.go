package templates

import "errors"

var (
	ErrNoRoots          = errors.New("templates: no template directories configured")
	ErrInvalidPattern   = errors.New("templates: file pattern must have a capture group for the key")
	ErrReadDir          = errors.New("templates: failed to read template directory")
	ErrReadFile         = errors.New("templates: failed to read template file")
	ErrTemplateNotFound = errors.New("templates: template not found")
)
