package leave

import "errors"

var (
	ErrApplicationNotFound = errors.New("leave application not found")
	ErrAlreadyDecided      = errors.New("leave application already decided")
	ErrPermissionDenied    = errors.New("permission denied")
)
