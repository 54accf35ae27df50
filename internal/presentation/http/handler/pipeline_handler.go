package handler

import (
	"github.com/franlead/franlead-api/internal/application/service"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/request"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// PipelineHandler handles pipeline stage HTTP requests
type PipelineHandler struct {
	pipelineService *service.PipelineService
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipelineService *service.PipelineService) *PipelineHandler {
	return &PipelineHandler{pipelineService: pipelineService}
}

// ChangeStatus handles moving a lead to another pipeline stage
func (h *PipelineHandler) ChangeStatus(c *gin.Context) {
	leadID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.pipelineService.ChangeStatus(c.Request.Context(), &service.ChangeStatusInput{
		LeadID:    leadID,
		Status:    req.Status,
		Notes:     req.Notes,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Status updated successfully", entry)
}

// CurrentStatus handles retrieving a lead's current pipeline stage
func (h *PipelineHandler) CurrentStatus(c *gin.Context) {
	leadID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	status, err := h.pipelineService.CurrentStatus(c.Request.Context(), leadID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Status retrieved successfully", gin.H{
		"status": status,
		"label":  status.Label(),
	})
}

// History handles retrieving a lead's full transition log
func (h *PipelineHandler) History(c *gin.Context) {
	leadID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	history, err := h.pipelineService.History(c.Request.Context(), leadID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "History retrieved successfully", history)
}

// Board handles retrieving the kanban board grouping
func (h *PipelineHandler) Board(c *gin.Context) {
	board, err := h.pipelineService.Board(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Board retrieved successfully", board)
}
