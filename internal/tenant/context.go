package tenant

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Locals keys set by middleware.
const (
	LocalOrgID   = "org_id"
	LocalOrgRole = "org_role"
)

// GetOrgID extracts the resolved organization id from Fiber context locals.
// Returns uuid.Nil when no organization has been resolved for this request.
func GetOrgID(c *fiber.Ctx) uuid.UUID {
	if orgID, ok := c.Locals(LocalOrgID).(uuid.UUID); ok {
		return orgID
	}
	return uuid.Nil
}

// GetOrgRole returns the caller's membership role within the resolved org.
func GetOrgRole(c *fiber.Ctx) string {
	if role, ok := c.Locals(LocalOrgRole).(string); ok {
		return role
	}
	return ""
}

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}
