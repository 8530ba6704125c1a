package insights

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/inventsight/inventsight-backend/internal/config"
)

// Module is the premium analytics surface: the SKU explorer, portfolio
// analysis and warehouse map all read from the derived metrics table.
type Module struct{}

func New() *Module {
	return &Module{}
}

func (m *Module) ID() string { return "insights" }

func (m *Module) Models() []interface{} {
	return []interface{}{&SkuMetric{}}
}

func (m *Module) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewService(db)
	handler := NewHandler(service)

	router.Get("/metrics", handler.ListMetrics)
	router.Get("/metrics/sku/:sku_id", handler.GetMetric)
	router.Post("/metrics/refresh", handler.Refresh)
	router.Get("/warehouse-breakdown", handler.WarehouseBreakdown)
}
