package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskComplete(t *testing.T) {
	task := Task{}
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	task.Complete(now)

	assert.True(t, task.Completed)
	assert.NotNil(t, task.CompletedAt)
	assert.Equal(t, now, *task.CompletedAt)
}

func TestTaskCompleteIdempotent(t *testing.T) {
	task := Task{}
	first := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	later := first.Add(2 * time.Hour)

	task.Complete(first)
	task.Complete(later)

	// The original completion time is kept
	assert.Equal(t, first, *task.CompletedAt)
}

func TestTaskReopen(t *testing.T) {
	task := Task{}
	task.Complete(time.Now())

	task.Reopen()

	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)

	// Reopening a pending task is a no-op
	task.Reopen()
	assert.False(t, task.Completed)
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&Task{}).IsOverdue(now), "no due date is never overdue")
	assert.True(t, (&Task{DueDate: &past}).IsOverdue(now))
	assert.False(t, (&Task{DueDate: &future}).IsOverdue(now))

	completed := Task{DueDate: &past}
	completed.Complete(now)
	assert.False(t, completed.IsOverdue(now), "completed tasks are never overdue")
}
