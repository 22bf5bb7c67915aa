package ports

import (
	"context"
	"time"

	"timed/internal/core/analytics"
	"timed/internal/core/domain"
)

type PlanRepository interface {
	Create(ctx context.Context, plan domain.Plan) (domain.Plan, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Plan, error)
	GetByDate(ctx context.Context, userID string, date time.Time) (domain.Plan, error)
	GetByID(ctx context.Context, planID, userID string) (domain.Plan, error)
	// Mutate runs apply against the stored plan inside a transaction that
	// holds the plan's row lock, so concurrent mutations of one plan are
	// serialized and a failing apply leaves the stored state untouched.
	Mutate(ctx context.Context, planID, userID string, apply func(*domain.Plan) error) (domain.Plan, error)
	Delete(ctx context.Context, planID, userID string) error
}

type PlanService interface {
	CreatePlan(ctx context.Context, in domain.CreatePlanInput) (domain.Plan, error)
	ListPlans(ctx context.Context, userID string) ([]domain.Plan, error)
	GetPlanByDate(ctx context.Context, userID string, date time.Time) (domain.Plan, error)
	PlanStats(ctx context.Context, planID, userID string) (analytics.Stats, error)
	AddTask(ctx context.Context, planID, userID string, in domain.AddTaskInput) (domain.Plan, error)
	UpdateTask(ctx context.Context, planID, userID, taskID string, in domain.UpdateTaskInput) (domain.Plan, error)
	CompleteTask(ctx context.Context, planID, userID, taskID string, actualEndTime *int) (domain.Plan, error)
	DeleteTask(ctx context.Context, planID, userID, taskID string) (domain.Plan, error)
	DeletePlan(ctx context.Context, planID, userID string) error
}
