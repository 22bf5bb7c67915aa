package dto

type TaskItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Category      string  `json:"category"`
	IsCompleted   bool    `json:"is_completed"`
	ActualEndTime *string `json:"actual_end_time,omitempty"`
	Order         int     `json:"order"`
}

type PlanItem struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	DayStartTime string     `json:"day_start_time"`
	DayEndTime   string     `json:"day_end_time"`
	Tasks        []TaskItem `json:"tasks"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

type PlanStatsItem struct {
	TotalDayMinutes      int     `json:"total_day_minutes"`
	ProductiveMinutes    int     `json:"productive_minutes"`
	LeisureMinutes       int     `json:"leisure_minutes"`
	BreakMinutes         int     `json:"break_minutes"`
	WastedMinutes        int     `json:"wasted_minutes"`
	ProductiveTime       string  `json:"productive_time"`
	WastedTime           string  `json:"wasted_time"`
	ProductivePercentage float64 `json:"productive_percentage"`
	CompletedTasks       int     `json:"completed_tasks"`
	TotalTasks           int     `json:"total_tasks"`
}

type CreatePlanRequest struct {
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	DayStartTime string `json:"day_start_time" binding:"required"`
	DayEndTime   string `json:"day_end_time" binding:"required"`
}

type AddTaskRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Category  string `json:"category" binding:"required,oneof=productive leisure break"`
}

type UpdateTaskRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	StartTime *string `json:"start_time" binding:"omitempty"`
	EndTime   *string `json:"end_time" binding:"omitempty"`
	Category  *string `json:"category" binding:"omitempty,oneof=productive leisure break"`
}

type CompleteTaskRequest struct {
	ActualEndTime *string `json:"actual_end_time" binding:"omitempty"`
}
