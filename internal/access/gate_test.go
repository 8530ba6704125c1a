package access

import (
	"errors"
	"testing"
	"time"

	"github.com/inventsight/inventsight-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGate(t *testing.T) {
	user := &models.User{Email: "owner@brand.test"}
	org := &models.Organization{Name: "Brand"}
	grant := Resolved(Decision{HasAccess: true, StatusLabel: "Trial · 5 days left"})
	deny := Resolved(Decision{HasAccess: false, StatusLabel: "Trial Expired"})

	tests := []struct {
		name     string
		session  Resolution[*models.User]
		org      Resolution[*models.Organization]
		decision Resolution[Decision]
		want     GateState
	}{
		{"session still loading blocks everything", Pending[*models.User](), Resolved(org), grant, GateResolving},
		{"no identity", Absent[*models.User](), Resolved(org), grant, GateSignedOut},
		{"session lookup failure degrades to signed out", Failed[*models.User](errors.New("boom")), Resolved(org), grant, GateSignedOut},
		{"org still loading", Resolved(user), Pending[*models.Organization](), grant, GateResolving},
		{"no active membership", Resolved(user), Absent[*models.Organization](), grant, GateNeedsOnboarding},
		{"org lookup failure degrades to onboarding", Resolved(user), Failed[*models.Organization](errors.New("boom")), grant, GateNeedsOnboarding},
		{"subscription pending grants optimistically", Resolved(user), Resolved(org), Pending[Decision](), GateAuthorized},
		{"access granted", Resolved(user), Resolved(org), grant, GateAuthorized},
		{"access denied pays the wall", Resolved(user), Resolved(org), deny, GatePaywalled},
		{"decision failure pays the wall", Resolved(user), Resolved(org), Failed[Decision](errors.New("boom")), GatePaywalled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Gate(tt.session, tt.org, tt.decision))
		})
	}
}

func TestGateReentersAuthorizedAfterReevaluation(t *testing.T) {
	// Redeeming a promo flips the stored row; only a fresh evaluation moves the
	// gate back from paywalled to authorized.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	end := now.Add(-time.Hour)
	sub := &models.Subscription{Status: models.SubscriptionStatusTrial, TrialEndsAt: &end}

	session := Resolved(&models.User{})
	org := Resolved(&models.Organization{})

	assert.Equal(t, GatePaywalled, Gate(session, org, Resolved(Evaluate(sub, now))))

	periodEnd := now.AddDate(0, 0, 30)
	sub.Status = models.SubscriptionStatusActive
	sub.CurrentPeriodEnd = &periodEnd

	assert.Equal(t, GateAuthorized, Gate(session, org, Resolved(Evaluate(sub, now))))
}

func TestGateStateString(t *testing.T) {
	assert.Equal(t, "paywalled", GatePaywalled.String())
	assert.Equal(t, "unknown", GateState(99).String())
}
