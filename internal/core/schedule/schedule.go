// Package schedule is the conflict-resolution engine for a plan's task
// list. Every function takes the current list plus one mutation and
// returns a fresh list that is sorted by start time, free of overlaps and
// inside the day window, or an error describing why the mutation cannot
// be applied. Inputs are never modified, so a rejected mutation leaves
// the caller's plan untouched.
package schedule

import (
	"fmt"
	"sort"

	"timed/internal/core/domain"
	"timed/pkg/timeutil"
)

// Insert places newTask into the list, shifting later tasks forward as
// needed to keep the timeline contiguous.
func Insert(tasks []domain.Task, dayStart, dayEnd int, newTask domain.Task) ([]domain.Task, error) {
	if newTask.EndTime <= newTask.StartTime {
		return nil, domain.ErrEndBeforeStart
	}
	if newTask.StartTime < dayStart {
		return nil, fmt.Errorf("%w: start time %s is before day start %s",
			domain.ErrOutOfDayBounds, timeutil.ToTimeString(newTask.StartTime), timeutil.ToTimeString(dayStart))
	}
	if newTask.EndTime > dayEnd {
		return nil, fmt.Errorf("%w: end time %s is after day end %s",
			domain.ErrOutOfDayBounds, timeutil.ToTimeString(newTask.EndTime), timeutil.ToTimeString(dayEnd))
	}

	next := clone(tasks)
	next = append(next, newTask)

	// On a start-time tie the new task sorts first, so an exact collision
	// shifts the pre-existing task rather than the one being added.
	sort.SliceStable(next, func(i, j int) bool {
		if next[i].StartTime == next[j].StartTime {
			return next[i].ID == newTask.ID && next[j].ID != newTask.ID
		}
		return next[i].StartTime < next[j].StartTime
	})

	// Resolve overlaps left to right: the later task of each overlapping
	// pair moves to start when the earlier one ends, keeping its duration.
	// Converges in at most len(next) passes; the cap only bounds
	// pathological input.
	maxPasses := 2 * len(next)
	for pass := 0; pass < maxPasses; pass++ {
		conflict := false
		for i := 0; i < len(next)-1; i++ {
			if next[i].EndTime <= next[i+1].StartTime {
				continue
			}
			conflict = true
			duration := next[i+1].Duration()
			next[i+1].StartTime = next[i].EndTime
			next[i+1].EndTime = next[i].EndTime + duration
			if next[i+1].EndTime > dayEnd {
				return nil, fmt.Errorf("%w (%s)", domain.ErrDayOverflow, timeutil.ToTimeString(dayEnd))
			}
		}
		if !conflict {
			break
		}
		sortByStart(next)
	}

	reindex(next)
	return next, nil
}

// Update edits one task and reflows the rest of the day around it: tasks
// after the edit keep their distance to its end, tasks before keep their
// distance to its start. Any task that a shift would push outside the day
// window rejects the whole edit.
func Update(tasks []domain.Task, dayStart, dayEnd int, taskID string, in domain.UpdateTaskInput) ([]domain.Task, error) {
	next := clone(tasks)
	idx := indexOf(next, taskID)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}

	if in.Name != nil {
		next[idx].Name = *in.Name
	}
	if in.Category != nil {
		next[idx].Category = *in.Category
	}

	if in.StartTime != nil || in.EndTime != nil {
		newStart := next[idx].StartTime
		newEnd := next[idx].EndTime
		if in.StartTime != nil {
			newStart = *in.StartTime
		}
		if in.EndTime != nil {
			newEnd = *in.EndTime
		}

		if newEnd <= newStart {
			return nil, domain.ErrEndBeforeStart
		}
		if newStart < dayStart || newEnd > dayEnd {
			return nil, fmt.Errorf("%w: %s-%s is outside %s-%s",
				domain.ErrOutOfDayBounds,
				timeutil.ToTimeString(newStart), timeutil.ToTimeString(newEnd),
				timeutil.ToTimeString(dayStart), timeutil.ToTimeString(dayEnd))
		}

		startDelta := newStart - next[idx].StartTime
		endDelta := newEnd - next[idx].EndTime
		next[idx].StartTime = newStart
		next[idx].EndTime = newEnd

		sortByStart(next)
		idx = indexOf(next, taskID)

		for i := idx + 1; i < len(next); i++ {
			if err := shiftWithin(&next[i], endDelta, dayStart, dayEnd); err != nil {
				return nil, err
			}
		}
		for i := idx - 1; i >= 0; i-- {
			if err := shiftWithin(&next[i], startDelta, dayStart, dayEnd); err != nil {
				return nil, err
			}
		}
	}

	sortByStart(next)
	reindex(next)
	return next, nil
}

// Complete marks a task done. When actualEnd differs from the planned end
// time the signed difference ripples through every later task (the domino
// effect), each keeping its duration. A task that is already completed is
// left as is, so repeating the call never re-shifts the timeline.
//
// Unlike Insert and Update this path does not check day boundaries: a
// task finished late is recorded as it happened, even past the day end.
func Complete(tasks []domain.Task, taskID string, actualEnd *int) ([]domain.Task, error) {
	next := clone(tasks)
	idx := indexOf(next, taskID)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}
	if next[idx].IsCompleted {
		return next, nil
	}
	next[idx].IsCompleted = true

	if actualEnd != nil && *actualEnd != next[idx].EndTime {
		delay := *actualEnd - next[idx].EndTime
		value := *actualEnd
		next[idx].ActualEndTime = &value
		for i := idx + 1; i < len(next); i++ {
			next[i].StartTime += delay
			next[i].EndTime += delay
		}
	}
	return next, nil
}

// Delete removes a task. Remaining tasks keep their times; only the order
// indices close up.
func Delete(tasks []domain.Task, taskID string) ([]domain.Task, error) {
	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}
	next := make([]domain.Task, 0, len(tasks)-1)
	for i, t := range tasks {
		if i != idx {
			next = append(next, t)
		}
	}
	reindex(next)
	return next, nil
}

func shiftWithin(t *domain.Task, delta, dayStart, dayEnd int) error {
	shiftedStart := t.StartTime + delta
	shiftedEnd := t.EndTime + delta
	if shiftedStart < dayStart || shiftedEnd > dayEnd {
		return fmt.Errorf("%w: task %q", domain.ErrCascadeOverflow, t.Name)
	}
	t.StartTime = shiftedStart
	t.EndTime = shiftedEnd
	return nil
}

func clone(tasks []domain.Task) []domain.Task {
	next := make([]domain.Task, len(tasks))
	copy(next, tasks)
	return next
}

func sortByStart(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].StartTime < tasks[j].StartTime
	})
}

func indexOf(tasks []domain.Task, taskID string) int {
	for i, t := range tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

func reindex(tasks []domain.Task) {
	for i := range tasks {
		tasks[i].Order = i
	}
}
