package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inventsight/inventsight-backend/internal/access"
	"github.com/inventsight/inventsight-backend/internal/config"
	"github.com/inventsight/inventsight-backend/internal/dto"
	"github.com/inventsight/inventsight-backend/internal/models"
	"github.com/inventsight/inventsight-backend/internal/observability"
	"github.com/inventsight/inventsight-backend/internal/tenant"
)

var (
	ErrPromoNotFound = errors.New("invalid promo code")
	ErrPromoMaxUses  = errors.New("promo code has reached its maximum uses")
	ErrPromoExpired  = errors.New("promo code has expired")
	ErrPromoNotFree  = errors.New("only 100% discount codes can activate without payment")
	ErrPromoTaken    = errors.New("promo code already exists")
)

type SubscriptionService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewSubscriptionService(db *gorm.DB, cfg *config.Config) *SubscriptionService {
	return &SubscriptionService{db: db, cfg: cfg}
}

// CurrentForOrg returns the authoritative subscription row: most recent by
// creation time. A missing row is a valid result (nil, nil), not an error.
func (s *SubscriptionService) CurrentForOrg(orgID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.Scopes(tenant.ForOrg(orgID)).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("subscription lookup failed: %w", err)
	}
	return &sub, nil
}

// EvaluateForOrg fetches the current row and runs the access decision against
// the real clock. Fetch failures are logged distinctly but collapse to absence,
// so callers always get a usable decision.
func (s *SubscriptionService) EvaluateForOrg(orgID uuid.UUID) (*models.Subscription, access.Decision) {
	sub, err := s.CurrentForOrg(orgID)
	if err != nil {
		slog.Error("subscription fetch failed, treating as absent",
			"org_id", orgID.String(), "action", "evaluate_subscription", "error", err.Error())
		sub = nil
	}
	return sub, access.Evaluate(sub, time.Now())
}

// QuotePromo validates a code and prices the plan with it applied.
func (s *SubscriptionService) QuotePromo(code string) (*dto.PromoQuoteResponse, error) {
	promo, err := s.lookupPromo(code)
	if err != nil {
		return nil, err
	}
	if err := PromoUsable(promo, time.Now()); err != nil {
		return nil, err
	}

	return &dto.PromoQuoteResponse{
		Code:        promo.Code,
		DiscountPct: promo.DiscountPct,
		BasePrice:   s.cfg.BasePriceRupees,
		FinalPrice:  FinalPrice(s.cfg.BasePriceRupees, promo.DiscountPct),
	}, nil
}

// RedeemPromo activates the org's subscription with a 100%-off code: the
// current row flips to active for one period at zero cost and the code's usage
// counter increments, atomically. Partial discounts go through payment, which
// is not wired yet.
func (s *SubscriptionService) RedeemPromo(orgID uuid.UUID, code string) (*models.Subscription, error) {
	promo, err := s.lookupPromo(code)
	if err != nil {
		return nil, err
	}
	if err := PromoUsable(promo, time.Now()); err != nil {
		return nil, err
	}
	if promo.DiscountPct != 100 {
		return nil, ErrPromoNotFree
	}

	var updated models.Subscription
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var sub models.Subscription
		if err := tx.Scopes(tenant.ForOrg(orgID)).Order("created_at DESC").First(&sub).Error; err != nil {
			return fmt.Errorf("no subscription row to activate: %w", err)
		}

		now := time.Now()
		periodEnd := now.AddDate(0, 0, s.cfg.PeriodDays)
		if err := tx.Model(&sub).Updates(map[string]interface{}{
			"status":               models.SubscriptionStatusActive,
			"current_period_start": now,
			"current_period_end":   periodEnd,
			"amount_paid":          0,
			"promo_code_used":      promo.Code,
		}).Error; err != nil {
			return fmt.Errorf("failed to activate subscription: %w", err)
		}

		// Guarded increment so two concurrent redemptions cannot exceed the cap.
		res := tx.Model(&models.PromoCode{}).
			Where("id = ? AND used_count < max_uses", promo.ID).
			Update("used_count", gorm.Expr("used_count + 1"))
		if res.Error != nil {
			return fmt.Errorf("failed to record promo use: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrPromoMaxUses
		}

		sub.Status = models.SubscriptionStatusActive
		sub.CurrentPeriodStart = &now
		sub.CurrentPeriodEnd = &periodEnd
		sub.AmountPaid = 0
		sub.PromoCodeUsed = &promo.Code
		updated = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.PromoRedemptions.Inc()
	slog.Info("promo code redeemed", "org_id", orgID.String(), "code", promo.Code)
	return &updated, nil
}

// ActivateManually is the "contact us to subscribe" path: an admin records a
// payment received outside the product and opens a period for the org.
func (s *SubscriptionService) ActivateManually(req *dto.ActivateSubscriptionRequest) (*models.Subscription, error) {
	periodDays := req.PeriodDays
	if periodDays <= 0 {
		periodDays = s.cfg.PeriodDays
	}

	var sub models.Subscription
	if err := s.db.Scopes(tenant.ForOrg(req.OrgID)).Order("created_at DESC").First(&sub).Error; err != nil {
		return nil, fmt.Errorf("no subscription row for org: %w", err)
	}

	now := time.Now()
	periodEnd := now.AddDate(0, 0, periodDays)
	if err := s.db.Model(&sub).Updates(map[string]interface{}{
		"status":               models.SubscriptionStatusActive,
		"current_period_start": now,
		"current_period_end":   periodEnd,
		"amount_paid":          req.AmountPaid,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to activate subscription: %w", err)
	}

	sub.Status = models.SubscriptionStatusActive
	sub.CurrentPeriodStart = &now
	sub.CurrentPeriodEnd = &periodEnd
	sub.AmountPaid = req.AmountPaid
	return &sub, nil
}

func (s *SubscriptionService) CreatePromoCode(req *dto.CreatePromoCodeRequest) (*models.PromoCode, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, errors.New("code is required")
	}
	if req.DiscountPct < 0 || req.DiscountPct > 100 {
		return nil, errors.New("discount_pct must be between 0 and 100")
	}
	maxUses := req.MaxUses
	if maxUses <= 0 {
		maxUses = 1
	}

	var existing models.PromoCode
	if err := s.db.Where("code = ?", code).First(&existing).Error; err == nil {
		return nil, ErrPromoTaken
	}

	promo := models.PromoCode{
		ID:          uuid.New(),
		Code:        code,
		DiscountPct: req.DiscountPct,
		MaxUses:     maxUses,
		ExpiresAt:   req.ExpiresAt,
		IsActive:    true,
	}
	if err := s.db.Create(&promo).Error; err != nil {
		return nil, fmt.Errorf("failed to create promo code: %w", err)
	}
	return &promo, nil
}

func (s *SubscriptionService) ListPromoCodes() ([]models.PromoCode, error) {
	var codes []models.PromoCode
	if err := s.db.Order("created_at DESC").Find(&codes).Error; err != nil {
		return nil, fmt.Errorf("failed to list promo codes: %w", err)
	}
	return codes, nil
}

func (s *SubscriptionService) DeactivatePromoCode(id uuid.UUID) error {
	res := s.db.Model(&models.PromoCode{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return fmt.Errorf("failed to deactivate promo code: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPromoNotFound
	}
	return nil
}

// lookupPromo matches case-insensitively by normalizing to upper case, and only
// sees active codes. Inactive and unknown are indistinguishable to the caller.
func (s *SubscriptionService) lookupPromo(code string) (*models.PromoCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrPromoNotFound
	}

	var promo models.PromoCode
	err := s.db.Where("code = ? AND is_active = true", normalized).First(&promo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, fmt.Errorf("promo lookup failed: %w", err)
	}
	return &promo, nil
}

// PromoUsable checks the usage cap and expiry against the given instant.
func PromoUsable(p *models.PromoCode, now time.Time) error {
	if p.UsedCount >= p.MaxUses {
		return ErrPromoMaxUses
	}
	if p.ExpiresAt != nil && p.ExpiresAt.Before(now) {
		return ErrPromoExpired
	}
	return nil
}

// FinalPrice applies a percentage discount to the base price in whole rupees.
func FinalPrice(base, discountPct int) int {
	if discountPct >= 100 {
		return 0
	}
	if discountPct <= 0 {
		return base
	}
	return int(math.Round(float64(base) - float64(base)*float64(discountPct)/100))
}
