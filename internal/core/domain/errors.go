package domain

import "errors"

var (
	ErrPlanNotFound  = errors.New("plan not found")
	ErrTaskNotFound  = errors.New("task not found")
	ErrDuplicatePlan = errors.New("plan already exists for this date")

	ErrEndBeforeStart  = errors.New("end time must be after start time")
	ErrOutOfDayBounds  = errors.New("task falls outside day boundaries")
	ErrDayOverflow     = errors.New("tasks would exceed day end time")
	ErrCascadeOverflow = errors.New("cascading shift would push a task outside day boundaries")
)
