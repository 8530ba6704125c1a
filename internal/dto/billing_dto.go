package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/inventsight/inventsight-backend/internal/access"
	"github.com/inventsight/inventsight-backend/internal/models"
)

// SubscriptionResponse pairs the raw row with the evaluated decision so the
// client renders the badge and paywall from one fetch.
type SubscriptionResponse struct {
	Subscription *models.Subscription `json:"subscription"`
	Decision     access.Decision      `json:"decision"`
}

type ApplyPromoRequest struct {
	Code string `json:"code"`
}

// PromoQuoteResponse is the result of validating a code before redemption.
type PromoQuoteResponse struct {
	Code        string `json:"code"`
	DiscountPct int    `json:"discount_pct"`
	BasePrice   int    `json:"base_price"`
	FinalPrice  int    `json:"final_price"`
}

type RedeemPromoRequest struct {
	Code string `json:"code"`
}

type CreatePromoCodeRequest struct {
	Code        string     `json:"code"`
	DiscountPct int        `json:"discount_pct"`
	MaxUses     int        `json:"max_uses"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type ActivateSubscriptionRequest struct {
	OrgID      uuid.UUID `json:"org_id"`
	AmountPaid int       `json:"amount_paid"`
	PeriodDays int       `json:"period_days"`
}

// PaywallResponse is the 402 payload for gated routes.
type PaywallResponse struct {
	Error       bool   `json:"error"`
	Message     string `json:"message"`
	StatusLabel string `json:"status_label"`
	DaysLeft    int    `json:"days_left"`
	Subscribe   string `json:"subscribe"`
}
