package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/inventsight/inventsight-backend/internal/dto"
	"github.com/inventsight/inventsight-backend/internal/services"
)

// AdminBillingHandler is the manual-sales surface: promo code management and
// out-of-band subscription activation ("contact us to subscribe").
type AdminBillingHandler struct {
	subscriptionService *services.SubscriptionService
}

func NewAdminBillingHandler(subscriptionService *services.SubscriptionService) *AdminBillingHandler {
	return &AdminBillingHandler{subscriptionService: subscriptionService}
}

func (h *AdminBillingHandler) CreatePromoCode(c *fiber.Ctx) error {
	var req dto.CreatePromoCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	promo, err := h.subscriptionService.CreatePromoCode(&req)
	if err != nil {
		if errors.Is(err, services.ErrPromoTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(promo)
}

func (h *AdminBillingHandler) ListPromoCodes(c *fiber.Ctx) error {
	codes, err := h.subscriptionService.ListPromoCodes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"promo_codes": codes, "total": len(codes)})
}

func (h *AdminBillingHandler) DeactivatePromoCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid promo code id",
		})
	}

	if err := h.subscriptionService.DeactivatePromoCode(id); err != nil {
		if errors.Is(err, services.ErrPromoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Promo code not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"message": "Promo code deactivated"})
}

func (h *AdminBillingHandler) ActivateSubscription(c *fiber.Ctx) error {
	var req dto.ActivateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.OrgID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "org_id is required",
		})
	}

	sub, err := h.subscriptionService.ActivateManually(&req)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(sub)
}
