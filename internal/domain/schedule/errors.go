package schedule

import "errors"

var ErrWorkShiftNotFound = errors.New("work shift not found")
