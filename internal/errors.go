package internal

import "errors"

var (
	// ErrNoTemplateDirs indicates the kit was created without template directories.
	ErrNoTemplateDirs = errors.New("hbkit: no template directories configured")

	// ErrInvalidPattern indicates the template file pattern does not compile.
	ErrInvalidPattern = errors.New("hbkit: invalid template pattern")
)
