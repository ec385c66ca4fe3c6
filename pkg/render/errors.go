package render

import "errors"

var (
	// ErrTemplateNotFound indicates no template exists for the subdir and key.
	ErrTemplateNotFound = errors.New("render: template not found")

	// ErrParseFailed indicates a template source is not valid Handlebars.
	ErrParseFailed = errors.New("render: failed to parse template")

	// ErrRenderFailed indicates template execution failed.
	ErrRenderFailed = errors.New("render: failed to render template")
)
