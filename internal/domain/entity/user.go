package entity

import (
	"time"

	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account in the system. Every user carries exactly one
// role; the role gates which mutations are permitted system-wide.
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email      string         `gorm:"size:255;unique;not null" json:"email"`
	FullName   string         `gorm:"size:255" json:"full_name"`
	Password   string         `gorm:"size:255" json:"-"`
	Role       enum.Role      `gorm:"size:20;default:'user'" json:"role"`
	AvatarURL  *string        `gorm:"size:255" json:"avatar_url,omitempty"`
	Provider   string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string        `gorm:"size:255" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// HasPermission checks membership of the user's role in a set of allowed
// roles. This is the whole of the authorization model.
func (u *User) HasPermission(allowed ...enum.Role) bool {
	return u.Role.In(allowed...)
}
