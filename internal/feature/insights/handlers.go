package insights

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

func (h *Handler) ListMetrics(c *fiber.Ctx) error {
	rows, err := h.service.List(tenant.GetOrgID(c), ListMetricsQuery{
		DocStatus: c.Query("doc_status"),
		BcgClass:  c.Query("bcg_class"),
		SortBy:    c.Query("sort_by"),
		SortDir:   c.Query("sort_dir"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load metrics",
		})
	}
	return c.JSON(fiber.Map{"metrics": rows, "total": len(rows)})
}

func (h *Handler) GetMetric(c *fiber.Ctx) error {
	skuID, err := uuid.Parse(c.Params("sku_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid SKU id",
		})
	}

	row, err := h.service.Get(tenant.GetOrgID(c), skuID)
	if err != nil {
		if errors.Is(err, ErrMetricNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load metric",
		})
	}
	return c.JSON(row)
}

func (h *Handler) Refresh(c *fiber.Ctx) error {
	if err := h.service.Refresh(tenant.GetOrgID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Metric recalculation failed",
		})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Metrics recalculated"})
}

func (h *Handler) WarehouseBreakdown(c *fiber.Ctx) error {
	rows, err := h.service.WarehouseBreakdown(tenant.GetOrgID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load warehouse breakdown",
		})
	}
	return c.JSON(fiber.Map{"warehouses": rows, "total": len(rows)})
}
