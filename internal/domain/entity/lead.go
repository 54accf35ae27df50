package entity

import (
	"time"

	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead represents a prospective franchisee ("candidato") tracked through the
// sales pipeline
type Lead struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName  string    `gorm:"size:255;not null" json:"full_name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	Location  string    `gorm:"size:255;not null" json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships. Leads are hard-deleted; the delete cascades to all of
	// these through the foreign key constraints.
	Details        *LeadDetails        `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	StatusHistory  []LeadStatusHistory `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"status_history,omitempty"`
	Communications []Communication     `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"communications,omitempty"`
	Tasks          []Task              `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// BeforeCreate generates a UUID before creating a new lead
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}

// CurrentStatus derives the lead's pipeline stage from its loaded status
// history: the entry with the maximum created_at wins, ties broken by the
// insertion sequence. A lead with no history is a new contact.
func (l *Lead) CurrentStatus() enum.LeadStatus {
	status := enum.LeadStatusNewContact
	var latest *LeadStatusHistory
	for i := range l.StatusHistory {
		e := &l.StatusHistory[i]
		if latest == nil || e.CreatedAt.After(latest.CreatedAt) ||
			(e.CreatedAt.Equal(latest.CreatedAt) && e.Seq > latest.Seq) {
			latest = e
		}
	}
	if latest != nil {
		status = latest.Status
	}
	return status
}

// LeadDetails extends a lead with qualification data collected on the intake
// form. One row per lead.
type LeadDetails struct {
	ID                 uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	LeadID             uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex" json:"lead_id"`
	PreviousExperience string                  `gorm:"type:text" json:"previous_experience"`
	InvestmentCapacity enum.InvestmentCapacity `gorm:"size:10;default:'no'" json:"investment_capacity"`
	SourceChannel      enum.SourceChannel      `gorm:"size:50;default:'other'" json:"source_channel"`
	InterestLevel      int                     `gorm:"default:1" json:"interest_level"`
	AdditionalComments string                  `gorm:"type:text" json:"additional_comments"`
	Score              int                     `gorm:"default:0" json:"score"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating new lead details
func (d *LeadDetails) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LeadDetails model
func (LeadDetails) TableName() string {
	return "lead_details"
}

// ComputeScore derives the lead quality score from the qualification fields:
//
//	interest_level*10 + (investment_capacity==yes ? 50 : 10)
//	+ 10 if previous_experience is set + 5 if additional_comments is set
//
// The literal formula is the contract; there is no cap.
func (d *LeadDetails) ComputeScore() int {
	score := d.InterestLevel * 10
	if d.InvestmentCapacity == enum.InvestmentCapacityYes {
		score += 50
	} else {
		score += 10
	}
	if d.PreviousExperience != "" {
		score += 10
	}
	if d.AdditionalComments != "" {
		score += 5
	}
	return score
}

// RefreshScore recomputes and stores the score. Must be called whenever any
// scoring input changes; a stale score is a defect.
func (d *LeadDetails) RefreshScore() {
	d.Score = d.ComputeScore()
}
