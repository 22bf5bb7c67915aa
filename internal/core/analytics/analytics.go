// Package analytics derives read-only statistics from a stored plan. The
// projection never mutates the plan and is never persisted.
package analytics

import (
	"math"

	"timed/internal/core/domain"
)

type Stats struct {
	TotalDayMinutes      int
	ProductiveMinutes    int
	LeisureMinutes       int
	BreakMinutes         int
	WastedMinutes        int
	ProductivePercentage float64
	CompletedTasks       int
	TotalTasks           int
}

// Project computes per-category totals for one plan. A task that runs
// past the day end (possible after a late completion) is capped at the
// day end rather than excluded; a task starting at or after the day end
// contributes nothing.
func Project(plan domain.Plan) Stats {
	stats := Stats{
		TotalDayMinutes: plan.DayEndTime - plan.DayStartTime,
		TotalTasks:      len(plan.Tasks),
	}

	perCategory := map[domain.Category]int{}
	for _, task := range plan.Tasks {
		if task.IsCompleted {
			stats.CompletedTasks++
		}

		end := task.EndTime
		if end > plan.DayEndTime {
			end = plan.DayEndTime
		}
		if task.StartTime >= plan.DayEndTime {
			continue
		}
		duration := end - task.StartTime
		if duration < 0 {
			duration = 0
		}
		perCategory[task.Category] += duration
	}

	stats.ProductiveMinutes = perCategory[domain.CategoryProductive]
	stats.LeisureMinutes = perCategory[domain.CategoryLeisure]
	stats.BreakMinutes = perCategory[domain.CategoryBreak]

	allocated := stats.ProductiveMinutes + stats.LeisureMinutes + stats.BreakMinutes
	stats.WastedMinutes = stats.TotalDayMinutes - allocated

	if stats.TotalDayMinutes > 0 {
		ratio := float64(stats.ProductiveMinutes) / float64(stats.TotalDayMinutes) * 100
		stats.ProductivePercentage = math.Round(ratio*10) / 10
	}

	return stats
}
