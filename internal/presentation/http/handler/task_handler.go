package handler

import (
	"strconv"

	"github.com/franlead/franlead-api/internal/application/service"
	"github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/request"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles listing tasks with optional filters
func (h *TaskHandler) List(c *gin.Context) {
	filter := &repository.TaskFilter{}

	if leadIDStr := c.Query("lead_id"); leadIDStr != "" {
		leadID, err := uuid.Parse(leadIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid lead ID")
			return
		}
		filter.LeadID = &leadID
	}
	if assignedStr := c.Query("assigned_to"); assignedStr != "" {
		assignedTo, err := uuid.Parse(assignedStr)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return
		}
		filter.AssignedTo = &assignedTo
	}
	if completedStr := c.Query("completed"); completedStr != "" {
		completed, err := strconv.ParseBool(completedStr)
		if err != nil {
			response.BadRequest(c, "Invalid completed filter")
			return
		}
		filter.Completed = &completed
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tasks retrieved successfully", tasks)
}

// ListOverdue handles listing pending tasks past their due date
func (h *TaskHandler) ListOverdue(c *gin.Context) {
	tasks, err := h.taskService.ListOverdueTasks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overdue tasks retrieved successfully", tasks)
}

// ListByLead handles listing the tasks of a single lead
func (h *TaskHandler) ListByLead(c *gin.Context) {
	leadID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), &repository.TaskFilter{LeadID: &leadID})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tasks retrieved successfully", tasks)
}

// CreateForLead handles creating a task on the lead-nested route
func (h *TaskHandler) CreateForLead(c *gin.Context) {
	leadID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.CreateLeadTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), &service.CreateTaskInput{
		LeadID:      leadID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Type:        req.Type,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Task created successfully", task)
}

// Create handles creating a task
func (h *TaskHandler) Create(c *gin.Context) {
	var req request.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), &service.CreateTaskInput{
		LeadID:      req.LeadID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Type:        req.Type,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Task created successfully", task)
}

// Get handles retrieving a task
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task retrieved successfully", task)
}

// Update handles updating a task
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	var req request.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), &service.UpdateTaskInput{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
		Type:         req.Type,
		AssignedTo:   req.AssignedTo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task updated successfully", task)
}

// Complete handles marking a task as done
func (h *TaskHandler) Complete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.CompleteTask(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task completed successfully", task)
}

// Reopen handles putting a completed task back to pending
func (h *TaskHandler) Reopen(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.ReopenTask(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task reopened successfully", task)
}

// Delete handles deleting a task
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task deleted successfully", nil)
}
