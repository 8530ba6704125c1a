package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventsight/inventsight-backend/internal/dto"
	"github.com/inventsight/inventsight-backend/internal/observability"
	"github.com/inventsight/inventsight-backend/internal/services"
	"github.com/inventsight/inventsight-backend/internal/tenant"
)

// RequirePlan gates premium routes on the access decision. Runs after
// RequireOrg. The evaluator treats fetch failures as absence (logged inside
// EvaluateForOrg), so a missing or broken row reads as "No Plan" and pays the
// wall rather than erroring.
func RequirePlan(subscriptionService *services.SubscriptionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID := tenant.GetOrgID(c)

		_, decision := subscriptionService.EvaluateForOrg(orgID)
		if decision.HasAccess {
			return c.Next()
		}

		observability.PaywallBlocks.Inc()
		return c.Status(fiber.StatusPaymentRequired).JSON(dto.PaywallResponse{
			Error:       true,
			Message:     "Subscription required. Your free trial has ended.",
			StatusLabel: decision.StatusLabel,
			DaysLeft:    decision.DaysLeft,
			Subscribe:   "/subscribe",
		})
	}
}
