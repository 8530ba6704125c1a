package inventory

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/inventsight/inventsight-backend/internal/config"
)

// Module exposes the master-data catalog: brands, categories, warehouses and
// SKUs with opening stock. Part of the free tier.
type Module struct{}

func New() *Module {
	return &Module{}
}

func (m *Module) ID() string { return "inventory" }

func (m *Module) Models() []interface{} {
	return []interface{}{
		&Brand{},
		&Category{},
		&Warehouse{},
		&Sku{},
		&SkuWarehouseStock{},
	}
}

func (m *Module) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewService(db)
	handler := NewHandler(service)

	router.Post("/brands", handler.CreateBrand)
	router.Get("/brands", handler.ListBrands)

	router.Post("/categories", handler.CreateCategory)
	router.Get("/categories", handler.ListCategories)

	router.Post("/warehouses", handler.CreateWarehouse)
	router.Get("/warehouses", handler.ListWarehouses)
	router.Delete("/warehouses/:id", handler.DeactivateWarehouse)

	router.Post("/skus", handler.CreateSku)
	router.Get("/skus", handler.ListSkus)
	router.Delete("/skus/:id", handler.DeactivateSku)
}
