package task

import "errors"

var (
	ErrTemplateNotFound = errors.New("task template not found")
	ErrInstanceNotFound = errors.New("task instance not found")
	ErrPermissionDenied = errors.New("permission denied")
)
