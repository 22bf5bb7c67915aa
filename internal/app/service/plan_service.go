package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"timed/internal/core/analytics"
	"timed/internal/core/domain"
	"timed/internal/core/ports"
	"timed/internal/core/schedule"
)

// PlanService orchestrates the plan store and the scheduler. Task
// mutations run the scheduler inside the store's Mutate transaction, so a
// scheduler rejection rolls back with nothing written.
type PlanService struct {
	planRepository ports.PlanRepository
}

func NewPlanService(planRepository ports.PlanRepository) *PlanService {
	return &PlanService{planRepository: planRepository}
}

func (s *PlanService) CreatePlan(ctx context.Context, in domain.CreatePlanInput) (domain.Plan, error) {
	plan := domain.Plan{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		Date:         in.Date,
		DayStartTime: in.DayStartTime,
		DayEndTime:   in.DayEndTime,
		Tasks:        []domain.Task{},
	}
	return s.planRepository.Create(ctx, plan)
}

func (s *PlanService) ListPlans(ctx context.Context, userID string) ([]domain.Plan, error) {
	return s.planRepository.ListByUser(ctx, userID)
}

func (s *PlanService) GetPlanByDate(ctx context.Context, userID string, date time.Time) (domain.Plan, error) {
	return s.planRepository.GetByDate(ctx, userID, date)
}

func (s *PlanService) PlanStats(ctx context.Context, planID, userID string) (analytics.Stats, error) {
	plan, err := s.planRepository.GetByID(ctx, planID, userID)
	if err != nil {
		return analytics.Stats{}, err
	}
	return analytics.Project(plan), nil
}

func (s *PlanService) AddTask(ctx context.Context, planID, userID string, in domain.AddTaskInput) (domain.Plan, error) {
	task := domain.Task{
		ID:        uuid.NewString(),
		Name:      in.Name,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Category:  in.Category,
	}
	return s.planRepository.Mutate(ctx, planID, userID, func(plan *domain.Plan) error {
		tasks, err := schedule.Insert(plan.Tasks, plan.DayStartTime, plan.DayEndTime, task)
		if err != nil {
			return err
		}
		plan.Tasks = tasks
		return nil
	})
}

func (s *PlanService) UpdateTask(ctx context.Context, planID, userID, taskID string, in domain.UpdateTaskInput) (domain.Plan, error) {
	return s.planRepository.Mutate(ctx, planID, userID, func(plan *domain.Plan) error {
		tasks, err := schedule.Update(plan.Tasks, plan.DayStartTime, plan.DayEndTime, taskID, in)
		if err != nil {
			return err
		}
		plan.Tasks = tasks
		return nil
	})
}

func (s *PlanService) CompleteTask(ctx context.Context, planID, userID, taskID string, actualEndTime *int) (domain.Plan, error) {
	return s.planRepository.Mutate(ctx, planID, userID, func(plan *domain.Plan) error {
		tasks, err := schedule.Complete(plan.Tasks, taskID, actualEndTime)
		if err != nil {
			return err
		}
		plan.Tasks = tasks
		return nil
	})
}

func (s *PlanService) DeleteTask(ctx context.Context, planID, userID, taskID string) (domain.Plan, error) {
	return s.planRepository.Mutate(ctx, planID, userID, func(plan *domain.Plan) error {
		tasks, err := schedule.Delete(plan.Tasks, taskID)
		if err != nil {
			return err
		}
		plan.Tasks = tasks
		return nil
	})
}

func (s *PlanService) DeletePlan(ctx context.Context, planID, userID string) error {
	return s.planRepository.Delete(ctx, planID, userID)
}

var _ ports.PlanService = (*PlanService)(nil)
