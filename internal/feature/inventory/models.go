package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a manufacturer label within an org's catalog (an org may sell
// several brands even though the org itself is "the brand account").
type Brand struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrgID     uuid.UUID `gorm:"type:uuid;not null;index" json:"org_id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Brand) TableName() string { return "brands_master" }

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrgID     uuid.UUID `gorm:"type:uuid;not null;index" json:"org_id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Warehouse struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrgID     uuid.UUID `gorm:"type:uuid;not null;index" json:"org_id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	City      string    `gorm:"size:100" json:"city"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sku is one sellable item variant with its pricing and procurement profile.
type Sku struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrgID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_skus_org_code" json:"org_id"`
	SkuCode         string     `gorm:"not null;size:100;uniqueIndex:idx_skus_org_code" json:"sku_code"`
	ItemName        string     `gorm:"not null;size:255" json:"item_name"`
	VariantName     *string    `gorm:"size:255" json:"variant_name,omitempty"`
	ParentASIN      *string    `gorm:"size:20" json:"parent_asin,omitempty"`
	ChildASIN       *string    `gorm:"size:20" json:"child_asin,omitempty"`
	BrandID         *uuid.UUID `gorm:"type:uuid;index" json:"brand_id,omitempty"`
	CategoryID      *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	MRP             float64    `gorm:"not null" json:"mrp"`
	CostPrice       float64    `gorm:"not null" json:"cost_price"`
	SellingPrice    float64    `gorm:"not null" json:"selling_price"`
	LeadTimeDays    int        `gorm:"not null" json:"lead_time_days"`
	LeadTimeType    string     `gorm:"size:20;not null;default:'procurement'" json:"lead_time_type"`
	VendorName      *string    `gorm:"size:255" json:"vendor_name,omitempty"`
	MinimumOrderQty int        `gorm:"not null;default:1" json:"minimum_order_qty"`
	HSNCode         *string    `gorm:"size:20" json:"hsn_code,omitempty"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Brand    *Brand               `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Category *Category            `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Stocks   []SkuWarehouseStock  `gorm:"foreignKey:SkuID" json:"stocks,omitempty"`
}

// SkuWarehouseStock carries the opening position and running quantity of one
// SKU in one warehouse.
type SkuWarehouseStock struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;index" json:"org_id"`
	SkuID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_sku_wh" json:"sku_id"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_sku_wh" json:"warehouse_id"`
	OpeningQty  int       `gorm:"not null;default:0" json:"opening_qty"`
	OpeningDate time.Time `gorm:"type:date" json:"opening_date"`
	CurrentQty  int       `gorm:"not null;default:0" json:"current_qty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Warehouse Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
}

func (SkuWarehouseStock) TableName() string { return "sku_warehouse_stock" }

// --- DTOs ---

type CreateBrandRequest struct {
	Name string `json:"name"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type CreateWarehouseRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type OpeningStockEntry struct {
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Qty         int       `json:"qty"`
}

type CreateSkuRequest struct {
	SkuCode         string              `json:"sku_code"`
	ItemName        string              `json:"item_name"`
	VariantName     string              `json:"variant_name"`
	ParentASIN      string              `json:"parent_asin"`
	ChildASIN       string              `json:"child_asin"`
	BrandID         *uuid.UUID          `json:"brand_id"`
	CategoryID      *uuid.UUID          `json:"category_id"`
	MRP             float64             `json:"mrp"`
	CostPrice       float64             `json:"cost_price"`
	SellingPrice    float64             `json:"selling_price"`
	LeadTimeDays    int                 `json:"lead_time_days"`
	LeadTimeType    string              `json:"lead_time_type"`
	VendorName      string              `json:"vendor_name"`
	MinimumOrderQty int                 `json:"minimum_order_qty"`
	HSNCode         string              `json:"hsn_code"`
	OpeningDate     string              `json:"opening_date"`
	WarehouseStocks []OpeningStockEntry `json:"warehouse_stocks"`
}
