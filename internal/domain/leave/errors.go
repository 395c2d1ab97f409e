package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request already processed")
	ErrNotCancellable   = errors.New("leave request is not cancellable")
	ErrInvalidLeaveType = errors.New("invalid leave type")
)
