package access

import (
	"testing"
	"time"

	"github.com/inventsight/inventsight-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

var evalNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func trialSub(endsAt time.Time) *models.Subscription {
	return &models.Subscription{Status: models.SubscriptionStatusTrial, TrialEndsAt: &endsAt}
}

func activeSub(periodEnd time.Time) *models.Subscription {
	return &models.Subscription{Status: models.SubscriptionStatusActive, CurrentPeriodEnd: &periodEnd}
}

func TestEvaluateNilSubscription(t *testing.T) {
	d := Evaluate(nil, evalNow)

	assert.False(t, d.HasAccess)
	assert.Equal(t, "No Plan", d.StatusLabel)
	assert.Zero(t, d.DaysLeft)
	assert.False(t, d.IsTrialActive)
	assert.False(t, d.IsSubscriptionActive)
}

func TestEvaluateTrial(t *testing.T) {
	tests := []struct {
		name      string
		endsAt    time.Time
		hasAccess bool
		daysLeft  int
		label     string
	}{
		{"mid trial 3.5 days out", evalNow.Add(84 * time.Hour), true, 4, "Trial · 4 days left"},
		{"exactly 7 days out", evalNow.Add(7 * 24 * time.Hour), true, 7, "Trial · 7 days left"},
		{"one second left", evalNow.Add(time.Second), true, 1, "Trial · 1 days left"},
		{"ended an hour ago", evalNow.Add(-time.Hour), false, 0, "Trial Expired"},
		{"ends exactly now", evalNow, false, 0, "Trial Expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(trialSub(tt.endsAt), evalNow)

			assert.Equal(t, tt.hasAccess, d.HasAccess)
			assert.Equal(t, tt.hasAccess, d.IsTrialActive)
			assert.Equal(t, tt.daysLeft, d.DaysLeft)
			assert.Equal(t, tt.label, d.StatusLabel)
			assert.False(t, d.IsSubscriptionActive)
		})
	}
}

func TestEvaluateActive(t *testing.T) {
	// 29 days 2 hours out rounds up to 30.
	d := Evaluate(activeSub(evalNow.Add(29*24*time.Hour+2*time.Hour)), evalNow)
	assert.True(t, d.HasAccess)
	assert.True(t, d.IsSubscriptionActive)
	assert.Equal(t, 30, d.DaysLeft)
	assert.Equal(t, "Active · 30 days left", d.StatusLabel)

	// The period-end boundary is exclusive.
	d = Evaluate(activeSub(evalNow), evalNow)
	assert.False(t, d.HasAccess)
	assert.Equal(t, "Subscription Expired", d.StatusLabel)
	assert.Zero(t, d.DaysLeft)
}

func TestEvaluateExpired(t *testing.T) {
	endsAt := evalNow.Add(90 * 24 * time.Hour)
	sub := &models.Subscription{
		Status: models.SubscriptionStatusExpired,
		// Date fields present but must be ignored.
		TrialEndsAt:      &endsAt,
		CurrentPeriodEnd: &endsAt,
	}

	d := Evaluate(sub, evalNow)
	assert.False(t, d.HasAccess)
	assert.Equal(t, "Expired", d.StatusLabel)
	assert.Zero(t, d.DaysLeft)
}

func TestEvaluateUnknownStatusDeniesAccess(t *testing.T) {
	for _, status := range []string{"", "cancelled", "past_due", "TRIAL"} {
		d := Evaluate(&models.Subscription{Status: status}, evalNow)
		assert.False(t, d.HasAccess, "status %q", status)
		assert.Equal(t, "No Plan", d.StatusLabel, "status %q", status)
		assert.Zero(t, d.DaysLeft, "status %q", status)
	}
}

func TestEvaluateMissingDateFields(t *testing.T) {
	// A trial row without trial_ends_at reads as already over, not as a panic.
	d := Evaluate(&models.Subscription{Status: models.SubscriptionStatusTrial}, evalNow)
	assert.False(t, d.HasAccess)
	assert.Equal(t, "Trial Expired", d.StatusLabel)

	d = Evaluate(&models.Subscription{Status: models.SubscriptionStatusActive}, evalNow)
	assert.False(t, d.HasAccess)
	assert.Equal(t, "Subscription Expired", d.StatusLabel)
}

func TestEvaluateDaysLeftMonotonicNonIncreasing(t *testing.T) {
	endsAt := evalNow.Add(10 * 24 * time.Hour)
	sub := trialSub(endsAt)

	prev := Evaluate(sub, evalNow).DaysLeft
	for now := evalNow.Add(6 * time.Hour); now.Before(endsAt.Add(24 * time.Hour)); now = now.Add(6 * time.Hour) {
		cur := Evaluate(sub, now).DaysLeft
		assert.LessOrEqual(t, cur, prev, "daysLeft grew as now advanced to %s", now)
		assert.GreaterOrEqual(t, cur, 0)
		prev = cur
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	sub := activeSub(evalNow.Add(48 * time.Hour))
	assert.Equal(t, Evaluate(sub, evalNow), Evaluate(sub, evalNow))
}
