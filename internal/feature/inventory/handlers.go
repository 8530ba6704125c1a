package inventory

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

func (h *Handler) CreateBrand(c *fiber.Ctx) error {
	var req CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	brand, err := h.service.CreateBrand(tenant.GetOrgID(c), req.Name)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

func (h *Handler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.service.ListBrands(tenant.GetOrgID(c))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"brands": brands, "total": len(brands)})
}

func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	category, err := h.service.CreateCategory(tenant.GetOrgID(c), req.Name)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(tenant.GetOrgID(c))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"categories": categories, "total": len(categories)})
}

func (h *Handler) CreateWarehouse(c *fiber.Ctx) error {
	var req CreateWarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	wh, err := h.service.CreateWarehouse(tenant.GetOrgID(c), &req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(wh)
}

func (h *Handler) ListWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.service.ListWarehouses(tenant.GetOrgID(c))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"warehouses": warehouses, "total": len(warehouses)})
}

func (h *Handler) DeactivateWarehouse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid warehouse id")
	}

	if err := h.service.DeactivateWarehouse(tenant.GetOrgID(c), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "Warehouse not found")
		}
		return internalError(c)
	}
	return c.JSON(fiber.Map{"message": "Warehouse deactivated"})
}

func (h *Handler) CreateSku(c *fiber.Ctx) error {
	var req CreateSkuRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	sku, err := h.service.CreateSku(tenant.GetOrgID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSkuCodeTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, ErrNoWarehouses):
			return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return badRequest(c, err.Error())
		}
	}
	return c.Status(fiber.StatusCreated).JSON(sku)
}

func (h *Handler) ListSkus(c *fiber.Ctx) error {
	skus, err := h.service.ListSkus(tenant.GetOrgID(c))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"skus": skus, "total": len(skus)})
}

func (h *Handler) DeactivateSku(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid sku id")
	}

	if err := h.service.DeactivateSku(tenant.GetOrgID(c), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "SKU not found")
		}
		return internalError(c)
	}
	return c.JSON(fiber.Map{"message": "SKU deactivated"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
