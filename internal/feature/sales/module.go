package sales

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/inventsight/inventsight-backend/internal/config"
)

// Module is daily sales capture. Always free, even without a subscription.
type Module struct{}

func New() *Module {
	return &Module{}
}

func (m *Module) ID() string { return "sales" }

func (m *Module) Models() []interface{} {
	return []interface{}{&DailySale{}}
}

func (m *Module) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	service := NewService(db)
	handler := NewHandler(service)

	router.Get("/sales", handler.ListForDay)
	router.Put("/sales", handler.SaveEntries)
}
