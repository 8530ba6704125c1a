package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription lifecycle states. Anything outside this set must be treated as
// "no access" by the evaluator.
const (
	SubscriptionStatusTrial   = "trial"
	SubscriptionStatusActive  = "active"
	SubscriptionStatusExpired = "expired"
)

// Subscription rows are append-only per organization; the row with the latest
// created_at is authoritative. TrialEndsAt is meaningful only for trial rows,
// the period bounds only for active rows.
type Subscription struct {
	ID                 uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrgID              uuid.UUID    `gorm:"type:uuid;not null;index" json:"org_id"`
	Status             string       `gorm:"not null;default:'trial';size:50" json:"status"`
	TrialEndsAt        *time.Time   `json:"trial_ends_at,omitempty"`
	CurrentPeriodStart *time.Time   `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   *time.Time   `json:"current_period_end,omitempty"`
	AmountPaid         int          `gorm:"not null;default:0" json:"amount_paid"`
	PromoCodeUsed      *string      `gorm:"size:50" json:"promo_code_used,omitempty"`
	CreatedAt          time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
	Organization       Organization `gorm:"foreignKey:OrgID" json:"-"`
}
