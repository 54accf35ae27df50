package handler

import (
	"github.com/franlead/franlead-api/internal/application/service"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/request"
	"github.com/franlead/franlead-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// EmailHandler handles email settings and outbound mail HTTP requests
type EmailHandler struct {
	emailService *service.EmailService
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService *service.EmailService) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

// GetSettings handles retrieving the SMTP settings
func (h *EmailHandler) GetSettings(c *gin.Context) {
	settings, err := h.emailService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Email settings retrieved successfully", settings)
}

// SaveSettings handles creating or replacing the SMTP settings
func (h *EmailHandler) SaveSettings(c *gin.Context) {
	var req request.SaveEmailSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.emailService.SaveSettings(c.Request.Context(), &service.SaveSettingsInput{
		SMTPHost:     req.SMTPHost,
		SMTPPort:     req.SMTPPort,
		SMTPUser:     req.SMTPUser,
		SMTPPassword: req.SMTPPassword,
		SMTPSecure:   req.SMTPSecure,
		FromEmail:    req.FromEmail,
		FromName:     req.FromName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Email settings saved successfully", settings)
}

// SendToLead handles sending a single email to a lead
func (h *EmailHandler) SendToLead(c *gin.Context) {
	leadID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.emailService.SendToLead(c.Request.Context(), &service.SendEmailInput{
		LeadID:    leadID,
		Subject:   req.Subject,
		Body:      req.Body,
		HTML:      req.HTML,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Email sent successfully", nil)
}

// Send handles sending a one-off email to an arbitrary address
func (h *EmailHandler) Send(c *gin.Context) {
	var req request.SendDirectEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.emailService.Send(c.Request.Context(), &service.SendDirectInput{
		To:      req.To,
		Subject: req.Subject,
		Body:    req.Body,
		HTML:    req.HTML,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Email sent successfully", nil)
}

// MassSend handles sending an email to many leads
func (h *EmailHandler) MassSend(c *gin.Context) {
	var req request.MassSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.emailService.MassSend(c.Request.Context(), &service.MassSendInput{
		LeadIDs:   req.LeadIDs,
		Status:    req.Status,
		Subject:   req.Subject,
		Body:      req.Body,
		HTML:      req.HTML,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Mass send completed", result)
}
