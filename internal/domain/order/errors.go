package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrAccessDenied  = errors.New("access denied")
	ErrCannotCancel  = errors.New("order can no longer be cancelled")
)
