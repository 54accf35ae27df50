package entity

import (
	"time"

	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a scheduled follow-up action tied to a lead. Lifecycle is
// pending -> completed and back; deletion is permanent.
type Task struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	LeadID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"lead_id"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	Type        enum.TaskType `gorm:"size:50;default:'call'" json:"type"`
	Completed   bool          `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	AssignedTo  *uuid.UUID    `gorm:"type:uuid" json:"assigned_to,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new task
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Task model
func (Task) TableName() string {
	return "tasks"
}

// Complete marks the task as done at the given time. Idempotent: completing
// an already-completed task keeps its original completed_at.
func (t *Task) Complete(now time.Time) {
	if t.Completed {
		return
	}
	t.Completed = true
	t.CompletedAt = &now
}

// Reopen puts the task back to pending and clears completed_at. Idempotent.
func (t *Task) Reopen() {
	t.Completed = false
	t.CompletedAt = nil
}

// IsOverdue reports whether a pending task is past its due date
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}
