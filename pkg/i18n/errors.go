package i18n

import "errors"

var (
	ErrInvalidFile = errors.New("i18n: invalid message bundle file")
	ErrReadFile    = errors.New("i18n: failed to read message bundle file")
)
