package handler

import (
	"strconv"

	"github.com/franlead/franlead-api/internal/application/service"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/request"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/response"
	"github.com/franlead/franlead-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService   *service.LeadService
	importService *service.ImportService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService, importService *service.ImportService) *LeadHandler {
	return &LeadHandler{leadService: leadService, importService: importService}
}

// List handles listing leads (supports both page-based and cursor-based pagination)
func (h *LeadHandler) List(c *gin.Context) {
	search := c.Query("search")

	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, search)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.leadService.ListLeads(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leads retrieved successfully", result)
}

func (h *LeadHandler) listWithCursor(c *gin.Context, search string) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	cursor := c.Query("cursor")
	direction := c.DefaultQuery("direction", "next")

	params := &pagination.CursorParams{
		Cursor:    cursor,
		Direction: pagination.CursorDirection(direction),
		Limit:     limit,
	}

	result, err := h.leadService.ListLeadsWithCursor(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Leads retrieved successfully", result)
}

// Create handles creating a lead
func (h *LeadHandler) Create(c *gin.Context) {
	var req request.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.InterestLevel == 0 {
		req.InterestLevel = 1
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), &service.CreateLeadInput{
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Location:           req.Location,
		PreviousExperience: req.PreviousExperience,
		InvestmentCapacity: req.InvestmentCapacity,
		SourceChannel:      req.SourceChannel,
		InterestLevel:      req.InterestLevel,
		AdditionalComments: req.AdditionalComments,
		CreatedBy:          GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lead created successfully", lead)
}

// Get handles retrieving a lead with its full aggregate
func (h *LeadHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead retrieved successfully", response.NewLeadAggregate(lead))
}

// Update handles updating a lead
func (h *LeadHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), &service.UpdateLeadInput{
		ID:                 id,
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Location:           req.Location,
		PreviousExperience: req.PreviousExperience,
		InvestmentCapacity: req.InvestmentCapacity,
		SourceChannel:      req.SourceChannel,
		InterestLevel:      req.InterestLevel,
		AdditionalComments: req.AdditionalComments,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead updated successfully", lead)
}

// Delete handles deleting a lead
func (h *LeadHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead deleted successfully", nil)
}

// Import handles bulk CSV import of leads
func (h *LeadHandler) Import(c *gin.Context) {
	var req request.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, validation, err := h.importService.ImportLeads(c.Request.Context(), req.CSVData, GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if validation != nil && !validation.IsValid {
		response.ValidationError(c, validation.Errors)
		return
	}

	response.OK(c, "Import completed", result)
}
