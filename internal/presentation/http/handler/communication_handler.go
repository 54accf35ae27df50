package handler

import (
	"github.com/franlead/franlead-api/internal/application/service"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/request"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CommunicationHandler handles communication log HTTP requests
type CommunicationHandler struct {
	commService *service.CommunicationService
}

// NewCommunicationHandler creates a new communication handler
func NewCommunicationHandler(commService *service.CommunicationService) *CommunicationHandler {
	return &CommunicationHandler{commService: commService}
}

// ListByLead handles listing a lead's communications
func (h *CommunicationHandler) ListByLead(c *gin.Context) {
	leadID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	communications, err := h.commService.ListByLead(c.Request.Context(), leadID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Communications retrieved successfully", communications)
}

// Create handles logging an interaction with a lead
func (h *CommunicationHandler) Create(c *gin.Context) {
	leadID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.CreateCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comm, err := h.commService.CreateCommunication(c.Request.Context(), &service.CreateCommunicationInput{
		LeadID:    leadID,
		Type:      req.Type,
		Content:   req.Content,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Communication logged successfully", comm)
}

// Update handles editing a logged interaction
func (h *CommunicationHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid communication ID")
		return
	}

	var req request.UpdateCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comm, err := h.commService.UpdateCommunication(c.Request.Context(), &service.UpdateCommunicationInput{
		ID:      id,
		Type:    req.Type,
		Content: req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Communication updated successfully", comm)
}

// Delete handles removing a logged interaction
func (h *CommunicationHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid communication ID")
		return
	}

	if err := h.commService.DeleteCommunication(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Communication deleted successfully", nil)
}
