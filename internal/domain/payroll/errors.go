package payroll

import "errors"

var (
	ErrRecordNotFound   = errors.New("payroll record not found")
	ErrAlreadyPaid      = errors.New("payroll record already marked paid")
	ErrPermissionDenied = errors.New("permission denied")
	ErrProofRequired    = errors.New("payment proof is required")
)
