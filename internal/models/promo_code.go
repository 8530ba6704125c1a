package models

import (
	"time"

	"github.com/google/uuid"
)

// PromoCode is a redeemable discount. Codes are stored upper-cased and matched
// case-insensitively by normalizing lookups to upper case.
type PromoCode struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code        string     `gorm:"not null;size:50;uniqueIndex" json:"code"`
	DiscountPct int        `gorm:"not null;check:discount_pct >= 0 AND discount_pct <= 100" json:"discount_pct"`
	MaxUses     int        `gorm:"not null;default:1" json:"max_uses"`
	UsedCount   int        `gorm:"not null;default:0" json:"used_count"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
