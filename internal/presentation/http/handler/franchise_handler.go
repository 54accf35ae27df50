package handler

import (
	"strconv"

	"github.com/franlead/franlead-api/internal/application/service"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/request"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/response"
	"github.com/franlead/franlead-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// FranchiseHandler handles franchise-related HTTP requests
type FranchiseHandler struct {
	franchiseService *service.FranchiseService
	importService    *service.ImportService
}

// NewFranchiseHandler creates a new franchise handler
func NewFranchiseHandler(franchiseService *service.FranchiseService, importService *service.ImportService) *FranchiseHandler {
	return &FranchiseHandler{franchiseService: franchiseService, importService: importService}
}

// List handles listing franchises
func (h *FranchiseHandler) List(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.franchiseService.ListFranchises(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Franchises retrieved successfully", result)
}

// Create handles creating a franchise
func (h *FranchiseHandler) Create(c *gin.Context) {
	var req request.CreateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	franchise, err := h.franchiseService.CreateFranchise(c.Request.Context(), &service.CreateFranchiseInput{
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		Province:      req.Province,
		Phone:         req.Phone,
		Email:         req.Email,
		ContactPerson: req.ContactPerson,
		Website:       req.Website,
		TesisCode:     req.TesisCode,
		CreatedBy:     GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Franchise created successfully", franchise)
}

// Get handles retrieving a franchise
func (h *FranchiseHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid franchise ID")
		return
	}

	franchise, err := h.franchiseService.GetFranchise(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Franchise retrieved successfully", franchise)
}

// Update handles updating a franchise
func (h *FranchiseHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid franchise ID")
		return
	}

	var req request.UpdateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	franchise, err := h.franchiseService.UpdateFranchise(c.Request.Context(), &service.UpdateFranchiseInput{
		ID:            id,
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		Province:      req.Province,
		Phone:         req.Phone,
		Email:         req.Email,
		ContactPerson: req.ContactPerson,
		Website:       req.Website,
		TesisCode:     req.TesisCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Franchise updated successfully", franchise)
}

// Delete handles deleting a franchise
func (h *FranchiseHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid franchise ID")
		return
	}

	if err := h.franchiseService.DeleteFranchise(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Franchise deleted successfully", nil)
}

// Import handles bulk CSV import of franchises
func (h *FranchiseHandler) Import(c *gin.Context) {
	var req request.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, validation, err := h.importService.ImportFranchises(c.Request.Context(), req.CSVData, GetUserID(c))
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
