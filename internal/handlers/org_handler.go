package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inventsight/inventsight-backend/internal/dto"
	"github.com/inventsight/inventsight-backend/internal/models"
	"github.com/inventsight/inventsight-backend/internal/services"
	"github.com/inventsight/inventsight-backend/internal/tenant"
)

type OrgHandler struct {
	orgService  *services.OrgService
	authService *services.AuthService
}

func NewOrgHandler(orgService *services.OrgService, authService *services.AuthService) *OrgHandler {
	return &OrgHandler{orgService: orgService, authService: authService}
}

// Current returns the caller's organization, or 404 when onboarding is still
// pending. The SPA uses the 404 to route to the setup flow.
func (h *OrgHandler) Current(c *fiber.Ctx) error {
	userID, err := tenant.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	member, err := h.orgService.ActiveMembership(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoOrganization) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":      true,
				"message":    "No active organization",
				"onboarding": "/onboarding",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(orgResponse(member))
}

// Onboard creates the organization, the owner membership and the trial
// subscription in one shot.
func (h *OrgHandler) Onboard(c *fiber.Ctx) error {
	userID, err := tenant.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateOrgRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	org, err := h.orgService.CreateWithOwner(userID, user.Email, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlugTaken), errors.Is(err, services.ErrAlreadyOnboard):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OrgResponse{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		GSTIN:        deref(org.GSTIN),
		ContactEmail: org.ContactEmail,
		ContactPhone: deref(org.ContactPhone),
		Plan:         org.Plan,
		Role:         "owner",
		CreatedAt:    org.CreatedAt,
	})
}

func orgResponse(member *models.OrgMember) dto.OrgResponse {
	org := member.Organization
	return dto.OrgResponse{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		GSTIN:        deref(org.GSTIN),
		ContactEmail: org.ContactEmail,
		ContactPhone: deref(org.ContactPhone),
		Plan:         org.Plan,
		Role:         member.Role,
		CreatedAt:    org.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
