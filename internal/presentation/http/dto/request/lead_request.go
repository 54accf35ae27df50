package request

import "github.com/franlead/franlead-api/internal/domain/enum"

// CreateLeadRequest represents the create lead payload. Qualification fields
// default to the least favorable values so a minimal form still scores.
type CreateLeadRequest struct {
	FullName           string                  `json:"full_name" binding:"required"`
	Email              string                  `json:"email" binding:"required,email"`
	Phone              string                  `json:"phone" binding:"required"`
	Location           string                  `json:"location" binding:"required"`
	PreviousExperience string                  `json:"previous_experience"`
	InvestmentCapacity enum.InvestmentCapacity `json:"investment_capacity"`
	SourceChannel      enum.SourceChannel      `json:"source_channel"`
	InterestLevel      int                     `json:"interest_level"`
	AdditionalComments string                  `json:"additional_comments"`
}

// UpdateLeadRequest represents the update lead payload; omitted fields are
// left untouched
type UpdateLeadRequest struct {
	FullName           *string                  `json:"full_name"`
	Email              *string                  `json:"email" binding:"omitempty,email"`
	Phone              *string                  `json:"phone"`
	Location           *string                  `json:"location"`
	PreviousExperience *string                  `json:"previous_experience"`
	InvestmentCapacity *enum.InvestmentCapacity `json:"investment_capacity"`
	SourceChannel      *enum.SourceChannel      `json:"source_channel"`
	InterestLevel      *int                     `json:"interest_level"`
	AdditionalComments *string                  `json:"additional_comments"`
}

// ChangeStatusRequest represents a pipeline stage transition payload
type ChangeStatusRequest struct {
	Status enum.LeadStatus `json:"status" binding:"required"`
	Notes  string          `json:"notes"`
}

// ImportRequest represents a CSV import payload. The file content travels as
// text in the JSON body.
type ImportRequest struct {
	CSVData string `json:"csv_data" binding:"required"`
}
