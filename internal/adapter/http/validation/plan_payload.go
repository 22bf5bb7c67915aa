package validation

import (
	"errors"
	"strings"
	"time"

	"timed/internal/adapter/http/dto"
	"timed/internal/core/domain"
	"timed/pkg/timeutil"
)

var (
	ErrInvalidPlanPayload = errors.New("invalid plan payload")
	ErrInvalidTaskPayload = errors.New("invalid task payload")
)

func BuildCreatePlanInput(userID string, req dto.CreatePlanRequest) (domain.CreatePlanInput, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.CreatePlanInput{}, ErrInvalidPlanPayload
	}

	dayStart, err := timeutil.ToMinutes(req.DayStartTime)
	if err != nil {
		return domain.CreatePlanInput{}, ErrInvalidPlanPayload
	}
	dayEnd, err := timeutil.ToMinutes(req.DayEndTime)
	if err != nil {
		return domain.CreatePlanInput{}, ErrInvalidPlanPayload
	}
	if dayEnd <= dayStart {
		return domain.CreatePlanInput{}, ErrInvalidPlanPayload
	}

	return domain.CreatePlanInput{
		UserID:       userID,
		Date:         date,
		DayStartTime: dayStart,
		DayEndTime:   dayEnd,
	}, nil
}

func BuildAddTaskInput(req dto.AddTaskRequest) (domain.AddTaskInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.AddTaskInput{}, ErrInvalidTaskPayload
	}

	category := domain.Category(req.Category)
	if !category.Valid() {
		return domain.AddTaskInput{}, ErrInvalidTaskPayload
	}

	startTime, err := timeutil.ToMinutes(req.StartTime)
	if err != nil {
		return domain.AddTaskInput{}, ErrInvalidTaskPayload
	}
	endTime, err := timeutil.ToMinutes(req.EndTime)
	if err != nil {
		return domain.AddTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.AddTaskInput{
		Name:      name,
		StartTime: startTime,
		EndTime:   endTime,
		Category:  category,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	var input domain.UpdateTaskInput

	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Name = &value
	}

	if req.Category != nil {
		value := domain.Category(*req.Category)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Category = &value
	}

	if req.StartTime != nil {
		value, err := timeutil.ToMinutes(*req.StartTime)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.StartTime = &value
	}

	if req.EndTime != nil {
		value, err := timeutil.ToMinutes(*req.EndTime)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.EndTime = &value
	}

	if input.Name == nil && input.Category == nil && input.StartTime == nil && input.EndTime == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return input, nil
}

func BuildActualEndTime(req dto.CompleteTaskRequest) (*int, error) {
	if req.ActualEndTime == nil {
		return nil, nil
	}
	value, err := timeutil.ToMinutes(*req.ActualEndTime)
	if err != nil {
		return nil, ErrInvalidTaskPayload
	}
	return &value, nil
}
