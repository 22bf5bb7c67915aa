package domain

import "time"

type Category string

const (
	CategoryProductive Category = "productive"
	CategoryLeisure    Category = "leisure"
	CategoryBreak      Category = "break"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryProductive, CategoryLeisure, CategoryBreak:
		return true
	}
	return false
}

// Task is one time-boxed block of a Plan. Times are minutes since
// midnight; Order matches the task's index once the list is sorted by
// StartTime.
type Task struct {
	ID            string
	Name          string
	StartTime     int
	EndTime       int
	Category      Category
	IsCompleted   bool
	ActualEndTime *int
	Order         int
}

func (t Task) Duration() int {
	return t.EndTime - t.StartTime
}

// Plan is one user's schedule for a single calendar date. Tasks are kept
// sorted by start time, non-overlapping, inside [DayStartTime, DayEndTime].
type Plan struct {
	ID           string
	UserID       string
	Date         time.Time // date only, midnight UTC
	DayStartTime int
	DayEndTime   int
	Tasks        []Task
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreatePlanInput struct {
	UserID       string
	Date         time.Time
	DayStartTime int
	DayEndTime   int
}

type AddTaskInput struct {
	Name      string
	StartTime int
	EndTime   int
	Category  Category
}

// UpdateTaskInput carries the optional fields of a task edit; nil means
// leave unchanged.
type UpdateTaskInput struct {
	Name      *string
	StartTime *int
	EndTime   *int
	Category  *Category
}
