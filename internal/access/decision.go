package access

import (
	"fmt"
	"math"
	"time"

	"github.com/inventsight/inventsight-backend/internal/models"
)

// Decision is the outcome of evaluating a subscription at a given instant. It
// gates the paywalled screens and feeds the status badge in the UI.
type Decision struct {
	HasAccess            bool   `json:"has_access"`
	StatusLabel          string `json:"status_label"`
	DaysLeft             int    `json:"days_left"`
	IsTrialActive        bool   `json:"is_trial_active"`
	IsSubscriptionActive bool   `json:"is_subscription_active"`
}

// Evaluate converts the latest subscription row (or nil when the org never had
// one) plus the evaluation instant into an access decision. Pure function: the
// clock is always injected, absence of data is valid input, it never errors.
//
// All fields start at their "No Plan" defaults and exactly one status branch
// may overwrite them, so a status outside {trial, active, expired} falls
// through to no access.
func Evaluate(sub *models.Subscription, now time.Time) Decision {
	d := Decision{StatusLabel: "No Plan"}
	if sub == nil {
		return d
	}

	switch sub.Status {
	case models.SubscriptionStatusTrial:
		end := derefTime(sub.TrialEndsAt)
		d.IsTrialActive = now.Before(end) // the exact end instant is not active
		d.DaysLeft = daysLeft(end, now)
		d.HasAccess = d.IsTrialActive
		if d.IsTrialActive {
			d.StatusLabel = fmt.Sprintf("Trial · %d days left", d.DaysLeft)
		} else {
			d.StatusLabel = "Trial Expired"
		}

	case models.SubscriptionStatusActive:
		end := derefTime(sub.CurrentPeriodEnd)
		d.IsSubscriptionActive = now.Before(end)
		d.DaysLeft = daysLeft(end, now)
		d.HasAccess = d.IsSubscriptionActive
		if d.IsSubscriptionActive {
			d.StatusLabel = fmt.Sprintf("Active · %d days left", d.DaysLeft)
		} else {
			d.StatusLabel = "Subscription Expired"
		}

	case models.SubscriptionStatusExpired:
		// Day counters stay zero; date fields on the row are ignored.
		d.StatusLabel = "Expired"
	}

	return d
}

// daysLeft is ceil((end - now) / 24h) clamped to non-negative. Ceiling, not
// floor: 3.5 days remaining reads as "4 days left".
func daysLeft(end, now time.Time) int {
	if !now.Before(end) {
		return 0
	}
	return int(math.Ceil(end.Sub(now).Hours() / 24))
}

// derefTime maps a missing date field to the zero time, which every branch
// treats as already past.
func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
