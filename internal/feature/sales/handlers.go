package sales

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/inventsight/inventsight-backend/internal/dto"
	"github.com/inventsight/inventsight-backend/internal/tenant"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SaveEntries(c *fiber.Ctx) error {
	var req SaveEntriesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.service.SaveEntries(tenant.GetOrgID(c), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidChannel) || errors.Is(err, ErrNoEntries) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(resp)
}

func (h *Handler) ListForDay(c *fiber.Ctx) error {
	warehouseID, err := uuid.Parse(c.Query("warehouse_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "warehouse_id is required",
		})
	}

	rows, err := h.service.ListForDay(tenant.GetOrgID(c), warehouseID, c.Query("channel"), c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{"sales": rows, "total": len(rows)})
}
