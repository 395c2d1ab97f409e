package attendance

import "errors"

var (
	ErrDayRecordNotFound = errors.New("day record not found")
	ErrDuplicateDay      = errors.New("a day record already exists for this date")
)
