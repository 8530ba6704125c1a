package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/inventsight/inventsight-backend/internal/dto"
	"github.com/inventsight/inventsight-backend/internal/services"
	"github.com/inventsight/inventsight-backend/internal/tenant"
)

// RequireOrg resolves the caller's single active organization membership and
// stashes the org id and role in locals. Runs after JWTProtected, so an
// identity is always present here.
//
// No membership maps to 409 with an onboarding hint (the SPA's redirect
// target). A lookup failure is logged distinctly but degrades to the same
// response, per the "failure collapses to absence" policy.
func RequireOrg(orgService *services.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := tenant.GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		member, err := orgService.ActiveMembership(userID)
		if err != nil {
			if !errors.Is(err, services.ErrNoOrganization) {
				slog.Error("membership lookup failed, treating as absent",
					"user_id", userID.String(), "action", "resolve_org", "error", err.Error())
			}
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":      true,
				"message":    "No active organization. Complete onboarding first.",
				"onboarding": "/onboarding",
			})
		}

		c.Locals(tenant.LocalOrgID, member.OrgID)
		c.Locals(tenant.LocalOrgRole, member.Role)
		return c.Next()
	}
}
