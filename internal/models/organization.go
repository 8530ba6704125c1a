package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the billing and data-isolation unit: one brand's account.
type Organization struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:255" json:"name"`
	Slug         string    `gorm:"not null;size:255;uniqueIndex" json:"slug"`
	GSTIN        *string   `gorm:"size:20" json:"gstin,omitempty"`
	ContactEmail string    `gorm:"size:255" json:"contact_email"`
	ContactPhone *string   `gorm:"size:30" json:"contact_phone,omitempty"`
	Plan         string    `gorm:"size:20;default:'trial'" json:"plan"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OrgMember links a user to an organization. The application reads memberships
// with "at most one active per user" semantics; onboarding creates the owner row.
type OrgMember struct {
	ID           uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrgID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"org_id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index:idx_org_members_user_active" json:"user_id"`
	Role         string       `gorm:"size:20;not null;default:'owner'" json:"role"`
	IsActive     bool         `gorm:"not null;default:true;index:idx_org_members_user_active" json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	Organization Organization `gorm:"foreignKey:OrgID" json:"organization"`
	User         User         `gorm:"foreignKey:UserID" json:"-"`
}
