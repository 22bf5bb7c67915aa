package mapper

import (
	"time"

	"timed/internal/adapter/http/dto"
	"timed/internal/core/analytics"
	"timed/internal/core/domain"
	"timed/pkg/timeutil"
)

func ToPlanItems(plans []domain.Plan) []dto.PlanItem {
	items := make([]dto.PlanItem, 0, len(plans))
	for _, plan := range plans {
		items = append(items, ToPlanItem(plan))
	}
	return items
}

func ToPlanItem(plan domain.Plan) dto.PlanItem {
	return dto.PlanItem{
		ID:           plan.ID,
		Date:         plan.Date.Format("2006-01-02"),
		DayStartTime: timeutil.ToTimeString(plan.DayStartTime),
		DayEndTime:   timeutil.ToTimeString(plan.DayEndTime),
		Tasks:        toTaskItems(plan.Tasks),
		CreatedAt:    plan.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    plan.UpdatedAt.Format(time.RFC3339),
	}
}

func toTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		item := dto.TaskItem{
			ID:          task.ID,
			Name:        task.Name,
			StartTime:   timeutil.ToTimeString(task.StartTime),
			EndTime:     timeutil.ToTimeString(task.EndTime),
			Category:    string(task.Category),
			IsCompleted: task.IsCompleted,
			Order:       task.Order,
		}
		if task.ActualEndTime != nil {
			value := timeutil.ToTimeString(*task.ActualEndTime)
			item.ActualEndTime = &value
		}
		items = append(items, item)
	}
	return items
}

func ToPlanStatsItem(stats analytics.Stats) dto.PlanStatsItem {
	return dto.PlanStatsItem{
		TotalDayMinutes:      stats.TotalDayMinutes,
		ProductiveMinutes:    stats.ProductiveMinutes,
		LeisureMinutes:       stats.LeisureMinutes,
		BreakMinutes:         stats.BreakMinutes,
		WastedMinutes:        stats.WastedMinutes,
		ProductiveTime:       timeutil.FormatDuration(stats.ProductiveMinutes),
		WastedTime:           timeutil.FormatDuration(stats.WastedMinutes),
		ProductivePercentage: stats.ProductivePercentage,
		CompletedTasks:       stats.CompletedTasks,
		TotalTasks:           stats.TotalTasks,
	}
}
