package service

import (
	"context"
	"testing"
	"time"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTaskDefaultsTypeToCall(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepository)
	leadRepo := new(MockLeadRepository)
	svc := NewTaskService(taskRepo, leadRepo)

	leadID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(&entity.Lead{ID: leadID}, nil)

	var created *entity.Task
	taskRepo.On("Create", ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Task)
		}).Return(nil)

	task, err := svc.CreateTask(ctx, &CreateTaskInput{
		LeadID: leadID,
		Title:  "Llamar al candidato",
	})

	assert.NoError(t, err)
	assert.Equal(t, enum.TaskTypeCall, task.Type)
	assert.False(t, task.Completed)
	assert.Equal(t, created, task)
}

func TestCreateTaskLeadNotFound(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepository)
	leadRepo := new(MockLeadRepository)
	svc := NewTaskService(taskRepo, leadRepo)

	leadID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(nil, nil)

	_, err := svc.CreateTask(ctx, &CreateTaskInput{LeadID: leadID, Title: "Enviar dossier"})

	assert.Error(t, err)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompleteTaskSetsCompletedAt(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepository)
	svc := NewTaskService(taskRepo, new(MockLeadRepository))

	taskID := uuid.New()
	taskRepo.On("GetByID", ctx, taskID).Return(&entity.Task{ID: taskID}, nil)
	taskRepo.On("Update", ctx, mock.AnythingOfType("*entity.Task")).Return(nil)

	task, err := svc.CompleteTask(ctx, taskID)

	assert.NoError(t, err)
	assert.True(t, task.Completed)
	assert.NotNil(t, task.CompletedAt)
}

func TestCompleteTaskAlreadyCompletedIsNoOp(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepository)
	svc := NewTaskService(taskRepo, new(MockLeadRepository))

	taskID := uuid.New()
	doneAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	taskRepo.On("GetByID", ctx, taskID).Return(&entity.Task{
		ID:          taskID,
		Completed:   true,
		CompletedAt: &doneAt,
	}, nil)

	task, err := svc.CompleteTask(ctx, taskID)

	assert.NoError(t, err)
	assert.Equal(t, &doneAt, task.CompletedAt)
	taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReopenTaskClearsCompletion(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepository)
	svc := NewTaskService(taskRepo, new(MockLeadRepository))

	taskID := uuid.New()
	doneAt := time.Now()
	taskRepo.On("GetByID", ctx, taskID).Return(&entity.Task{
		ID:          taskID,
		Completed:   true,
		CompletedAt: &doneAt,
	}, nil)
	taskRepo.On("Update", ctx, mock.AnythingOfType("*entity.Task")).Return(nil)

	task, err := svc.ReopenTask(ctx, taskID)

	assert.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
}

func TestReopenPendingTaskIsNoOp(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepository)
	svc := NewTaskService(taskRepo, new(MockLeadRepository))

	taskID := uuid.New()
	taskRepo.On("GetByID", ctx, taskID).Return(&entity.Task{ID: taskID}, nil)

	task, err := svc.ReopenTask(ctx, taskID)

	assert.NoError(t, err)
	assert.False(t, task.Completed)
	taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListOverdueTasksKeepsOnlyPastDue(t *testing.T) {
	ctx := context.Background()
	taskRepo := new(MockTaskRepository)
	svc := NewTaskService(taskRepo, new(MockLeadRepository))

	pastDue := time.Now().Add(-2 * time.Hour)
	futureDue := time.Now().Add(2 * time.Hour)
	overdueID := uuid.New()

	var captured *repository.TaskFilter
	taskRepo.On("List", ctx, mock.AnythingOfType("*repository.TaskFilter")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*repository.TaskFilter)
		}).Return([]entity.Task{
		{ID: overdueID, DueDate: &pastDue},
		{ID: uuid.New(), DueDate: &futureDue},
		{ID: uuid.New()}, // no due date, never overdue
	}, nil)

	tasks, err := svc.ListOverdueTasks(ctx)

	assert.NoError(t, err)
	assert.NotNil(t, captured.Completed)
	assert.False(t, *captured.Completed)
	assert.Len(t, tasks, 1)
	assert.Equal(t, overdueID, tasks[0].ID)
}
