package request

import (
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/google/uuid"
)

// SaveEmailSettingsRequest represents the SMTP settings payload. The password
// may be omitted to keep the stored one.
type SaveEmailSettingsRequest struct {
	SMTPHost     string `json:"smtp_host" binding:"required"`
	SMTPPort     int    `json:"smtp_port" binding:"required"`
	SMTPUser     string `json:"smtp_user" binding:"required"`
	SMTPPassword string `json:"smtp_password"`
	SMTPSecure   bool   `json:"smtp_secure"`
	FromEmail    string `json:"from_email" binding:"required,email"`
	FromName     string `json:"from_name" binding:"required"`
}

// SendEmailRequest represents a single email to a lead
type SendEmailRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
	HTML    bool   `json:"html"`
}

// SendDirectEmailRequest represents a one-off email to an arbitrary address
type SendDirectEmailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
	HTML    bool   `json:"html"`
}

// MassSendRequest represents a bulk email payload. Exactly one of lead_ids
// or status selects the recipients.
type MassSendRequest struct {
	LeadIDs []uuid.UUID      `json:"lead_ids"`
	Status  *enum.LeadStatus `json:"status"`
	Subject string           `json:"subject" binding:"required"`
	Body    string           `json:"body" binding:"required"`
	HTML    bool             `json:"html"`
}
