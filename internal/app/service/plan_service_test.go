package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appservice "timed/internal/app/service"
	"timed/internal/core/domain"
)

type planRepositoryMock struct {
	mock.Mock
}

func (m *planRepositoryMock) Create(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	args := m.Called(ctx, plan)
	if err := args.Error(1); err != nil {
		return domain.Plan{}, err
	}
	return args.Get(0).(domain.Plan), nil
}

func (m *planRepositoryMock) ListByUser(ctx context.Context, userID string) ([]domain.Plan, error) {
	args := m.Called(ctx, userID)

	var plans []domain.Plan
	if value := args.Get(0); value != nil {
		plans = value.([]domain.Plan)
	}
	return plans, args.Error(1)
}

func (m *planRepositoryMock) GetByDate(ctx context.Context, userID string, date time.Time) (domain.Plan, error) {
	args := m.Called(ctx, userID, date)
	if err := args.Error(1); err != nil {
		return domain.Plan{}, err
	}
	return args.Get(0).(domain.Plan), nil
}

func (m *planRepositoryMock) GetByID(ctx context.Context, planID, userID string) (domain.Plan, error) {
	args := m.Called(ctx, planID, userID)
	if err := args.Error(1); err != nil {
		return domain.Plan{}, err
	}
	return args.Get(0).(domain.Plan), nil
}

// Mutate behaves like the real store: it hands the stored plan to apply
// and returns the rewritten plan, or apply's error with nothing written.
func (m *planRepositoryMock) Mutate(ctx context.Context, planID, userID string, apply func(*domain.Plan) error) (domain.Plan, error) {
	args := m.Called(ctx, planID, userID)
	if err := args.Error(1); err != nil {
		return domain.Plan{}, err
	}

	plan := args.Get(0).(domain.Plan)
	if err := apply(&plan); err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}

func (m *planRepositoryMock) Delete(ctx context.Context, planID, userID string) error {
	args := m.Called(ctx, planID, userID)
	return args.Error(0)
}

func storedPlan(tasks ...domain.Task) domain.Plan {
	return domain.Plan{
		ID:           "plan-1",
		UserID:       "user-1",
		Date:         time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		DayStartTime: 6 * 60,
		DayEndTime:   23 * 60,
		Tasks:        tasks,
	}
}

func TestCreatePlan_AssignsIDAndEmptyTaskList(t *testing.T) {
	repoMock := new(planRepositoryMock)
	var created domain.Plan
	repoMock.On("Create", mock.Anything, mock.MatchedBy(func(plan domain.Plan) bool {
		created = plan
		return plan.UserID == "user-1" && plan.ID != ""
	})).Return(domain.Plan{ID: "stored"}, nil).Once()

	svc := appservice.NewPlanService(repoMock)
	_, err := svc.CreatePlan(context.Background(), domain.CreatePlanInput{
		UserID:       "user-1",
		Date:         time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		DayStartTime: 6 * 60,
		DayEndTime:   23 * 60,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.Tasks)
	require.Empty(t, created.Tasks)
	repoMock.AssertExpectations(t)
}

func TestCreatePlan_DuplicateDate(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("Create", mock.Anything, mock.Anything).Return(domain.Plan{}, domain.ErrDuplicatePlan).Once()

	svc := appservice.NewPlanService(repoMock)
	_, err := svc.CreatePlan(context.Background(), domain.CreatePlanInput{UserID: "user-1"})
	require.ErrorIs(t, err, domain.ErrDuplicatePlan)
	repoMock.AssertExpectations(t)
}

func TestAddTask_SchedulesIntoStoredPlan(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("Mutate", mock.Anything, "plan-1", "user-1").Return(
		storedPlan(domain.Task{ID: "a", Name: "standup", StartTime: 9 * 60, EndTime: 10 * 60, Category: domain.CategoryProductive}),
		nil,
	).Once()

	svc := appservice.NewPlanService(repoMock)
	plan, err := svc.AddTask(context.Background(), "plan-1", "user-1", domain.AddTaskInput{
		Name:      "reading",
		StartTime: 9*60 + 30,
		EndTime:   10*60 + 30,
		Category:  domain.CategoryLeisure,
	})
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 2)
	require.Equal(t, "standup", plan.Tasks[0].Name)
	require.Equal(t, "reading", plan.Tasks[1].Name)
	require.NotEmpty(t, plan.Tasks[1].ID)
	// The overlapping task was shifted to follow the existing one.
	require.Equal(t, 10*60, plan.Tasks[1].StartTime)
	require.Equal(t, 11*60, plan.Tasks[1].EndTime)
	repoMock.AssertExpectations(t)
}

func TestAddTask_SchedulerRejectionPropagates(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("Mutate", mock.Anything, "plan-1", "user-1").Return(
		storedPlan(domain.Task{ID: "a", Name: "late block", StartTime: 21 * 60, EndTime: 22*60 + 30, Category: domain.CategoryProductive}),
		nil,
	).Once()

	svc := appservice.NewPlanService(repoMock)
	_, err := svc.AddTask(context.Background(), "plan-1", "user-1", domain.AddTaskInput{
		Name:      "too much",
		StartTime: 21 * 60,
		EndTime:   21*60 + 45,
		Category:  domain.CategoryBreak,
	})
	require.ErrorIs(t, err, domain.ErrDayOverflow)
	repoMock.AssertExpectations(t)
}

func TestAddTask_PlanNotFound(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("Mutate", mock.Anything, "missing", "user-1").Return(domain.Plan{}, domain.ErrPlanNotFound).Once()

	svc := appservice.NewPlanService(repoMock)
	_, err := svc.AddTask(context.Background(), "missing", "user-1", domain.AddTaskInput{
		Name:      "anything",
		StartTime: 9 * 60,
		EndTime:   10 * 60,
		Category:  domain.CategoryProductive,
	})
	require.ErrorIs(t, err, domain.ErrPlanNotFound)
	repoMock.AssertExpectations(t)
}

func TestUpdateTask_CascadesThroughPlan(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("Mutate", mock.Anything, "plan-1", "user-1").Return(
		storedPlan(
			domain.Task{ID: "a", Name: "focus", StartTime: 9 * 60, EndTime: 10 * 60, Category: domain.CategoryProductive, Order: 0},
			domain.Task{ID: "b", Name: "walk", StartTime: 10 * 60, EndTime: 11 * 60, Category: domain.CategoryBreak, Order: 1},
		),
		nil,
	).Once()

	svc := appservice.NewPlanService(repoMock)
	newEnd := 10*60 + 30
	plan, err := svc.UpdateTask(context.Background(), "plan-1", "user-1", "a", domain.UpdateTaskInput{EndTime: &newEnd})
	require.NoError(t, err)
	require.Equal(t, 10*60+30, plan.Tasks[1].StartTime)
	require.Equal(t, 11*60+30, plan.Tasks[1].EndTime)
	repoMock.AssertExpectations(t)
}

func TestUpdateTask_TaskNotFound(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("Mutate", mock.Anything, "plan-1", "user-1").Return(storedPlan(), nil).Once()

	svc := appservice.NewPlanService(repoMock)
	_, err := svc.UpdateTask(context.Background(), "plan-1", "user-1", "missing", domain.UpdateTaskInput{})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	repoMock.AssertExpectations(t)
}

func TestCompleteTask_StoresActualEndTime(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("Mutate", mock.Anything, "plan-1", "user-1").Return(
		storedPlan(
			domain.Task{ID: "a", Name: "focus", StartTime: 9 * 60, EndTime: 10 * 60, Category: domain.CategoryProductive, Order: 0},
			domain.Task{ID: "b", Name: "walk", StartTime: 10 * 60, EndTime: 11 * 60, Category: domain.CategoryBreak, Order: 1},
		),
		nil,
	).Once()

	svc := appservice.NewPlanService(repoMock)
	actual := 10*60 + 20
	plan, err := svc.CompleteTask(context.Background(), "plan-1", "user-1", "a", &actual)
	require.NoError(t, err)
	require.True(t, plan.Tasks[0].IsCompleted)
	require.NotNil(t, plan.Tasks[0].ActualEndTime)
	require.Equal(t, actual, *plan.Tasks[0].ActualEndTime)
	require.Equal(t, 10*60+20, plan.Tasks[1].StartTime)
	repoMock.AssertExpectations(t)
}

func TestDeleteTask_RemovesFromPlan(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("Mutate", mock.Anything, "plan-1", "user-1").Return(
		storedPlan(
			domain.Task{ID: "a", Name: "focus", StartTime: 9 * 60, EndTime: 10 * 60, Category: domain.CategoryProductive, Order: 0},
			domain.Task{ID: "b", Name: "walk", StartTime: 10 * 60, EndTime: 11 * 60, Category: domain.CategoryBreak, Order: 1},
		),
		nil,
	).Once()

	svc := appservice.NewPlanService(repoMock)
	plan, err := svc.DeleteTask(context.Background(), "plan-1", "user-1", "a")
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 1)
	require.Equal(t, "b", plan.Tasks[0].ID)
	require.Equal(t, 0, plan.Tasks[0].Order)
	repoMock.AssertExpectations(t)
}

func TestPlanStats_ProjectsStoredPlan(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("GetByID", mock.Anything, "plan-1", "user-1").Return(
		storedPlan(domain.Task{ID: "a", Name: "focus", StartTime: 9 * 60, EndTime: 10 * 60, Category: domain.CategoryProductive}),
		nil,
	).Once()

	svc := appservice.NewPlanService(repoMock)
	stats, err := svc.PlanStats(context.Background(), "plan-1", "user-1")
	require.NoError(t, err)
	require.Equal(t, 1020, stats.TotalDayMinutes)
	require.Equal(t, 60, stats.ProductiveMinutes)
	require.Equal(t, 960, stats.WastedMinutes)
	repoMock.AssertExpectations(t)
}

func TestListPlans_Passthrough(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("ListByUser", mock.Anything, "user-1").Return([]domain.Plan{storedPlan()}, nil).Once()

	svc := appservice.NewPlanService(repoMock)
	plans, err := svc.ListPlans(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	repoMock.AssertExpectations(t)
}

func TestDeletePlan_Passthrough(t *testing.T) {
	repoMock := new(planRepositoryMock)
	repoMock.On("Delete", mock.Anything, "plan-1", "user-1").Return(domain.ErrPlanNotFound).Once()

	svc := appservice.NewPlanService(repoMock)
	err := svc.DeletePlan(context.Background(), "plan-1", "user-1")
	require.ErrorIs(t, err, domain.ErrPlanNotFound)
	repoMock.AssertExpectations(t)
}
