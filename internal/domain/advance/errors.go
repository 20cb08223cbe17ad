package advance

import "errors"

var (
	ErrRequestNotFound  = errors.New("advance request not found")
	ErrAlreadyDecided   = errors.New("advance request already decided")
	ErrLimitExceeded    = errors.New("advance amount exceeds the configured limit")
	ErrPermissionDenied = errors.New("permission denied")
)
