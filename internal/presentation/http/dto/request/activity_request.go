package request

import (
	"time"

	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/google/uuid"
)

// CreateTaskRequest represents the create task payload
type CreateTaskRequest struct {
	LeadID      uuid.UUID     `json:"lead_id" binding:"required"`
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	DueDate     *time.Time    `json:"due_date"`
	Type        enum.TaskType `json:"type"`
	AssignedTo  *uuid.UUID    `json:"assigned_to"`
}

// CreateLeadTaskRequest represents the create task payload on the
// lead-nested route, where the lead comes from the URL.
type CreateLeadTaskRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	DueDate     *time.Time    `json:"due_date"`
	Type        enum.TaskType `json:"type"`
	AssignedTo  *uuid.UUID    `json:"assigned_to"`
}

// UpdateTaskRequest represents the update task payload
type UpdateTaskRequest struct {
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	DueDate      *time.Time     `json:"due_date"`
	ClearDueDate bool           `json:"clear_due_date"`
	Type         *enum.TaskType `json:"type"`
	AssignedTo   *uuid.UUID     `json:"assigned_to"`
}

// CreateCommunicationRequest represents the create communication payload
type CreateCommunicationRequest struct {
	Type    enum.CommunicationType `json:"type"`
	Content string                 `json:"content" binding:"required"`
}

// UpdateCommunicationRequest represents the update communication payload
type UpdateCommunicationRequest struct {
	Type    *enum.CommunicationType `json:"type"`
	Content *string                 `json:"content"`
}
