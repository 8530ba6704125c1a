package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inventsight/inventsight-backend/internal/dto"
	"github.com/inventsight/inventsight-backend/internal/services"
	"github.com/inventsight/inventsight-backend/internal/tenant"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Current returns the latest subscription row plus the evaluated decision.
// The badge and the paywall both render from this single payload.
func (h *SubscriptionHandler) Current(c *fiber.Ctx) error {
	orgID := tenant.GetOrgID(c)
	sub, decision := h.subscriptionService.EvaluateForOrg(orgID)
	return c.JSON(dto.SubscriptionResponse{Subscription: sub, Decision: decision})
}

// QuotePromo validates a code and returns the discounted price without
// redeeming anything.
func (h *SubscriptionHandler) QuotePromo(c *fiber.Ctx) error {
	var req dto.ApplyPromoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	quote, err := h.subscriptionService.QuotePromo(req.Code)
	if err != nil {
		return promoError(c, err)
	}
	return c.JSON(quote)
}

// RedeemPromo activates the subscription with a 100%-off code.
func (h *SubscriptionHandler) RedeemPromo(c *fiber.Ctx) error {
	orgID := tenant.GetOrgID(c)

	var req dto.RedeemPromoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	sub, err := h.subscriptionService.RedeemPromo(orgID, req.Code)
	if err != nil {
		return promoError(c, err)
	}

	_, decision := h.subscriptionService.EvaluateForOrg(orgID)
	return c.JSON(dto.SubscriptionResponse{Subscription: sub, Decision: decision})
}

func promoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPromoNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid promo code. Please check and try again.",
		})
	case errors.Is(err, services.ErrPromoMaxUses):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "This promo code has reached its maximum uses.",
		})
	case errors.Is(err, services.ErrPromoExpired):
		return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{
			Error: true, Message: "This promo code has expired.",
		})
	case errors.Is(err, services.ErrPromoNotFree):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
