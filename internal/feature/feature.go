package feature

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/inventsight/inventsight-backend/internal/config"
)

// Module is a mountable product area (master data, sales capture, insights).
type Module interface {
	// ID returns the unique module identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the module's routes on the given Fiber group.
	// The group already carries JWT and org-resolution middleware; premium
	// modules are mounted on a group that also carries the paywall.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
