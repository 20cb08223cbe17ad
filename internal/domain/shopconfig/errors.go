package shopconfig

import "errors"

var (
	ErrConfigNotFound   = errors.New("shop configuration not found")
	ErrPermissionDenied = errors.New("permission denied")
)
