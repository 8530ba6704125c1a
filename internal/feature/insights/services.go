package insights

import (
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inventsight/inventsight-backend/internal/observability"
	"github.com/inventsight/inventsight-backend/internal/tenant"
)

// Days of cover a suggested purchase order should buy.
const reorderCoverDays = 45

var ErrMetricNotFound = errors.New("no metrics calculated for this SKU yet")

var sortColumns = map[string]string{
	"doc_days":        "doc_days",
	"drr_30d":         "drr_30d",
	"revenue_30d":     "revenue_30d",
	"growth_rate_pct": "growth_rate_pct",
	"capital_at_risk": "capital_at_risk",
	"days_to_reorder": "days_to_reorder",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SuggestedOrderQty is the reorder quantity the purchase screen proposes:
// enough stock for the cover window at the 30-day run rate, never below the
// vendor's minimum order quantity.
func SuggestedOrderQty(minimumOrderQty int, drr30d float64) int {
	if drr30d < 0 {
		drr30d = 0
	}
	qty := int(math.Ceil(drr30d * reorderCoverDays))
	if qty < minimumOrderQty {
		return minimumOrderQty
	}
	return qty
}

// List returns the metric rows for the explorer table. Filtering and sorting
// happen in SQL; sort keys are whitelisted so the query string never reaches
// the ORDER BY clause verbatim.
func (s *Service) List(orgID uuid.UUID, q ListMetricsQuery) ([]SkuMetric, error) {
	query := s.db.Scopes(tenant.ForOrg(orgID)).Model(&SkuMetric{})

	if q.DocStatus != "" {
		query = query.Where("doc_status = ?", q.DocStatus)
	}
	if q.BcgClass != "" {
		query = query.Where("bcg_class = ?", q.BcgClass)
	}

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "doc_days"
	}
	direction := "ASC"
	if q.SortDir == "desc" {
		direction = "DESC"
	}
	query = query.Order(column + " " + direction + " NULLS LAST")

	var rows []SkuMetric
	err := query.Find(&rows).Error
	return rows, err
}

// Get returns the metric row for a single SKU.
func (s *Service) Get(orgID, skuID uuid.UUID) (*SkuMetric, error) {
	var row SkuMetric
	err := s.db.Scopes(tenant.ForOrg(orgID)).
		Where("sku_id = ?", skuID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMetricNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Refresh recalculates the whole metrics table for one organization. The
// heavy lifting is a database function so the recalculation sees a consistent
// snapshot of stock and sales.
func (s *Service) Refresh(orgID uuid.UUID) error {
	if err := s.db.Exec("SELECT calculate_sku_metrics(?)", orgID).Error; err != nil {
		slog.Error("metric recalculation failed", "org_id", orgID, "error", err)
		return err
	}
	observability.MetricRefreshes.Inc()
	return nil
}

// WarehouseBreakdown aggregates current stock per warehouse for the map view.
func (s *Service) WarehouseBreakdown(orgID uuid.UUID) ([]WarehouseStockRow, error) {
	var rows []WarehouseStockRow
	err := s.db.Table("sku_warehouse_stock").
		Select(`warehouses.id AS warehouse_id,
			warehouses.name AS warehouse_name,
			warehouses.city,
			COUNT(DISTINCT sku_warehouse_stock.sku_id) AS sku_count,
			COALESCE(SUM(sku_warehouse_stock.current_qty), 0) AS total_units`).
		Joins("JOIN warehouses ON warehouses.id = sku_warehouse_stock.warehouse_id").
		Where("sku_warehouse_stock.org_id = ?", orgID).
		Group("warehouses.id, warehouses.name, warehouses.city").
		Order("total_units DESC").
		Scan(&rows).Error
	return rows, err
}
