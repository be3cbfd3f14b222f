package state

import (
	"time"

	"tally-cli/internal/model"
)

// SampleTasks returns the example tasks shown on first launch.
func SampleTasks(now time.Time) []model.Task {
	texts := []string{
		"Add new tasks to my todo list",
		"Mark important tasks as complete",
		"Delete finished tasks",
		"Edit task description",
	}
	out := make([]model.Task, 0, len(texts))
	for i, text := range texts {
		out = append(out, model.Task{
			ID:        int64(i + 1),
			Text:      text,
			Completed: i == 0,
			CreatedAt: now,
		})
	}
	return out
}
