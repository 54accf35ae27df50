package service

import (
	"context"
	"time"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/pkg/apperror"
	"github.com/google/uuid"
)

// TaskService handles follow-up task operations
type TaskService struct {
	taskRepo repository.TaskRepository
	leadRepo repository.LeadRepository
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepository, leadRepo repository.LeadRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, leadRepo: leadRepo}
}

// CreateTaskInput represents the create task input
type CreateTaskInput struct {
	LeadID      uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Type        enum.TaskType
	AssignedTo  *uuid.UUID
}

// CreateTask creates a pending task attached to a lead
func (s *TaskService) CreateTask(ctx context.Context, input *CreateTaskInput) (*entity.Task, error) {
	lead, err := s.leadRepo.GetByID(ctx, input.LeadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if input.Type == "" {
		input.Type = enum.TaskTypeCall
	}
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid task type")
	}

	task := &entity.Task{
		LeadID:      input.LeadID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Type:        input.Type,
		AssignedTo:  input.AssignedTo,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFoundError("Task")
	}
	return task, nil
}

// UpdateTaskInput represents the update task input. Nil fields are left
// unchanged; ClearDueDate removes an existing due date.
type UpdateTaskInput struct {
	ID           uuid.UUID
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Type         *enum.TaskType
	AssignedTo   *uuid.UUID
}

// UpdateTask updates a task's editable fields
func (s *TaskService) UpdateTask(ctx context.Context, input *UpdateTaskInput) (*entity.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFoundError("Task")
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid task type")
		}
		task.Type = *input.Type
	}
	if input.AssignedTo != nil {
		task.AssignedTo = input.AssignedTo
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// CompleteTask marks a task as done. Completing an already-completed task is
// a no-op that returns the task unchanged.
func (s *TaskService) CompleteTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFoundError("Task")
	}

	if task.Completed {
		return task, nil
	}
	task.Complete(time.Now())
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ReopenTask puts a completed task back to pending
func (s *TaskService) ReopenTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFoundError("Task")
	}

	if !task.Completed {
		return task, nil
	}
	task.Reopen()
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask permanently removes a task
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return apperror.NewNotFoundError("Task")
	}
	return s.taskRepo.Delete(ctx, id)
}

// ListTasks lists tasks matching the filter
func (s *TaskService) ListTasks(ctx context.Context, filter *repository.TaskFilter) ([]entity.Task, error) {
	return s.taskRepo.List(ctx, filter)
}

// ListOverdueTasks lists pending tasks whose due date has passed
func (s *TaskService) ListOverdueTasks(ctx context.Context) ([]entity.Task, error) {
	pending := false
	tasks, err := s.taskRepo.List(ctx, &repository.TaskFilter{Completed: &pending})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	overdue := make([]entity.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.IsOverdue(now) {
			overdue = append(overdue, task)
		}
	}
	return overdue, nil
}
