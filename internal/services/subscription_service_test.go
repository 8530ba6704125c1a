package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/inventsight/inventsight-backend/internal/models"
)

func TestPromoUsable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, 0, -1)

	tests := []struct {
		name  string
		promo models.PromoCode
		want  error
	}{
		{"fresh code", models.PromoCode{MaxUses: 5, UsedCount: 0}, nil},
		{"last use available", models.PromoCode{MaxUses: 5, UsedCount: 4}, nil},
		{"cap reached", models.PromoCode{MaxUses: 5, UsedCount: 5}, ErrPromoMaxUses},
		{"over cap", models.PromoCode{MaxUses: 1, UsedCount: 3}, ErrPromoMaxUses},
		{"unexpired", models.PromoCode{MaxUses: 1, ExpiresAt: &future}, nil},
		{"expired", models.PromoCode{MaxUses: 1, ExpiresAt: &past}, ErrPromoExpired},
		{"no expiry never expires", models.PromoCode{MaxUses: 1}, nil},
		{"cap wins over expiry", models.PromoCode{MaxUses: 1, UsedCount: 1, ExpiresAt: &past}, ErrPromoMaxUses},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PromoUsable(&tt.promo, now)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestFinalPrice(t *testing.T) {
	assert.Equal(t, 4999, FinalPrice(4999, 0))
	assert.Equal(t, 0, FinalPrice(4999, 100))
	assert.Equal(t, 2500, FinalPrice(4999, 50)) // 2499.5 rounds up
	assert.Equal(t, 4499, FinalPrice(4999, 10))
	assert.Equal(t, 4999, FinalPrice(4999, -5))
	assert.Equal(t, 0, FinalPrice(4999, 150))
}
