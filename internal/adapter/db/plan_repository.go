package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"timed/internal/core/domain"
	"timed/internal/core/ports"
)

// A plan is stored as a single row with its ordered task list embedded as
// a JSON document, so every mutation is one atomic row write. The unique
// key on (user_id, plan_date) enforces one plan per user per date.

const (
	mysqlDuplicateEntry = 1062

	insertPlanQuery = `
INSERT INTO plans (id, user_id, plan_date, day_start_time, day_end_time, tasks)
VALUES (?, ?, ?, ?, ?, ?);
`

	selectPlanColumns = `
SELECT id, user_id, plan_date, day_start_time, day_end_time, tasks, created_at, updated_at
FROM plans
`

	listPlansQuery        = selectPlanColumns + `WHERE user_id = ? ORDER BY plan_date DESC;`
	getPlanByDateQuery    = selectPlanColumns + `WHERE user_id = ? AND plan_date = ?;`
	getPlanByIDQuery      = selectPlanColumns + `WHERE id = ? AND user_id = ?;`
	getPlanForUpdateQuery = selectPlanColumns + `WHERE id = ? AND user_id = ? FOR UPDATE;`

	updatePlanTasksQuery = `UPDATE plans SET tasks = ?, updated_at = NOW() WHERE id = ?;`
	deletePlanQuery      = `DELETE FROM plans WHERE id = ? AND user_id = ?;`
)

type PlanRepository struct {
	db *sqlx.DB
}

var _ ports.PlanRepository = (*PlanRepository)(nil)

func NewPlanRepository(db *sqlx.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

type planRow struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	PlanDate     time.Time `db:"plan_date"`
	DayStartTime int       `db:"day_start_time"`
	DayEndTime   int       `db:"day_end_time"`
	Tasks        []byte    `db:"tasks"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type taskDoc struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StartTime     int    `json:"start_time"`
	EndTime       int    `json:"end_time"`
	Category      string `json:"category"`
	IsCompleted   bool   `json:"is_completed"`
	ActualEndTime *int   `json:"actual_end_time,omitempty"`
	Order         int    `json:"order"`
}

func (r *PlanRepository) Create(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	tasks, err := marshalTasks(plan.Tasks)
	if err != nil {
		return domain.Plan{}, err
	}

	_, err = r.db.ExecContext(ctx, insertPlanQuery,
		plan.ID,
		plan.UserID,
		plan.Date.Format("2006-01-02"),
		plan.DayStartTime,
		plan.DayEndTime,
		tasks,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.Plan{}, domain.ErrDuplicatePlan
		}
		return domain.Plan{}, fmt.Errorf("insert plan: %w", err)
	}

	return r.GetByID(ctx, plan.ID, plan.UserID)
}

func (r *PlanRepository) ListByUser(ctx context.Context, userID string) ([]domain.Plan, error) {
	var rows []planRow
	if err := r.db.SelectContext(ctx, &rows, listPlansQuery, userID); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	plans := make([]domain.Plan, 0, len(rows))
	for _, row := range rows {
		plan, err := mapPlanRowToDomainPlan(row)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *PlanRepository) GetByDate(ctx context.Context, userID string, date time.Time) (domain.Plan, error) {
	var row planRow
	err := r.db.GetContext(ctx, &row, getPlanByDateQuery, userID, date.Format("2006-01-02"))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Plan{}, domain.ErrPlanNotFound
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("get plan by date: %w", err)
	}
	return mapPlanRowToDomainPlan(row)
}

func (r *PlanRepository) GetByID(ctx context.Context, planID, userID string) (domain.Plan, error) {
	var row planRow
	err := r.db.GetContext(ctx, &row, getPlanByIDQuery, planID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Plan{}, domain.ErrPlanNotFound
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("get plan: %w", err)
	}
	return mapPlanRowToDomainPlan(row)
}

// Mutate loads the plan under its row lock, lets apply rewrite the task
// list and writes the result back in the same transaction. Concurrent
// mutations of one plan serialize on the lock; an apply error rolls
// everything back.
func (r *PlanRepository) Mutate(ctx context.Context, planID, userID string, apply func(*domain.Plan) error) (domain.Plan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("begin mutation: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var row planRow
	err = tx.GetContext(ctx, &row, getPlanForUpdateQuery, planID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Plan{}, domain.ErrPlanNotFound
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("lock plan: %w", err)
	}

	plan, err := mapPlanRowToDomainPlan(row)
	if err != nil {
		return domain.Plan{}, err
	}

	if err := apply(&plan); err != nil {
		return domain.Plan{}, err
	}

	tasks, err := marshalTasks(plan.Tasks)
	if err != nil {
		return domain.Plan{}, err
	}
	if _, err := tx.ExecContext(ctx, updatePlanTasksQuery, tasks, plan.ID); err != nil {
		return domain.Plan{}, fmt.Errorf("update plan tasks: %w", err)
	}

	err = tx.GetContext(ctx, &row, getPlanByIDQuery, planID, userID)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("reload plan: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Plan{}, fmt.Errorf("commit mutation: %w", err)
	}
	return mapPlanRowToDomainPlan(row)
}

func (r *PlanRepository) Delete(ctx context.Context, planID, userID string) error {
	result, err := r.db.ExecContext(ctx, deletePlanQuery, planID, userID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if affected == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

func marshalTasks(tasks []domain.Task) ([]byte, error) {
	docs := make([]taskDoc, 0, len(tasks))
	for _, task := range tasks {
		docs = append(docs, taskDoc{
			ID:            task.ID,
			Name:          task.Name,
			StartTime:     task.StartTime,
			EndTime:       task.EndTime,
			Category:      string(task.Category),
			IsCompleted:   task.IsCompleted,
			ActualEndTime: task.ActualEndTime,
			Order:         task.Order,
		})
	}

	value, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return value, nil
}

func mapPlanRowToDomainPlan(row planRow) (domain.Plan, error) {
	var docs []taskDoc
	if err := json.Unmarshal(row.Tasks, &docs); err != nil {
		return domain.Plan{}, fmt.Errorf("unmarshal tasks for plan %s: %w", row.ID, err)
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, domain.Task{
			ID:            doc.ID,
			Name:          doc.Name,
			StartTime:     doc.StartTime,
			EndTime:       doc.EndTime,
			Category:      domain.Category(doc.Category),
			IsCompleted:   doc.IsCompleted,
			ActualEndTime: doc.ActualEndTime,
			Order:         doc.Order,
		})
	}

	return domain.Plan{
		ID:           row.ID,
		UserID:       row.UserID,
		Date:         row.PlanDate,
		DayStartTime: row.DayStartTime,
		DayEndTime:   row.DayEndTime,
		Tasks:        tasks,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
