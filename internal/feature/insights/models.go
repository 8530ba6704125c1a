package insights

import (
	"time"

	"github.com/google/uuid"
)

// DOC status bands, worst to best.
const (
	DocStatusBlack = "black"
	DocStatusRed   = "red"
	DocStatusAmber = "amber"
	DocStatusGreen = "green"
)

// BCG portfolio classes.
const (
	BcgStar         = "star"
	BcgCashCow      = "cash_cow"
	BcgQuestionMark = "question_mark"
	BcgDog          = "dog"
)

// SkuMetric is one row of the derived metrics table. The calculation engine
// lives in the database (calculate_sku_metrics); this side only reads rows and
// triggers recalculation.
type SkuMetric struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrgID             uuid.UUID  `gorm:"type:uuid;not null;index" json:"org_id"`
	SkuID             uuid.UUID  `gorm:"type:uuid;not null;index" json:"sku_id"`
	DocDays           *float64   `json:"doc_days"`
	DocStatus         string     `gorm:"size:10" json:"doc_status"`
	Drr7d             float64    `json:"drr_7d"`
	Drr30d            float64    `json:"drr_30d"`
	Drr90d            float64    `json:"drr_90d"`
	DrrTrendSignal    string     `gorm:"size:20" json:"drr_trend_signal"`
	TotalCurrentStock int        `json:"total_current_stock"`
	ReorderPointQty   int        `json:"reorder_point_qty"`
	ReorderDeadline   *time.Time `gorm:"type:date" json:"reorder_deadline"`
	DaysToReorder     *int       `json:"days_to_reorder"`
	BcgClass          string     `gorm:"size:20" json:"bcg_class"`
	GrowthRatePct     float64    `json:"growth_rate_pct"`
	Revenue30d        float64    `json:"revenue_30d"`
	IsEolCandidate    bool       `gorm:"not null;default:false" json:"is_eol_candidate"`
	CapitalAtRisk     float64    `json:"capital_at_risk"`
	CalculatedOn      time.Time  `json:"calculated_on"`
}

// WarehouseStockRow is the per-warehouse position for the warehouse map.
type WarehouseStockRow struct {
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	City          string    `json:"city"`
	SkuCount      int64     `json:"sku_count"`
	TotalUnits    int64     `json:"total_units"`
}

// --- DTOs ---

type ListMetricsQuery struct {
	DocStatus string
	BcgClass  string
	SortBy    string
	SortDir   string
}
