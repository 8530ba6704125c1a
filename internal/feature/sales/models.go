package sales

import (
	"time"

	"github.com/google/uuid"
)

// Sales channels the entry screen knows about.
const (
	ChannelAmazonIndia = "amazon_india"
	ChannelFlipkart    = "flipkart"
	ChannelMeesho      = "meesho"
)

// DailySale is one SKU's movement on one day through one warehouse and
// channel. GMV is derived at write time from the SKU's selling price.
type DailySale struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrgID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_sales_key" json:"org_id"`
	SkuID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_sales_key" json:"sku_id"`
	WarehouseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_sales_key" json:"warehouse_id"`
	Channel       string    `gorm:"size:30;not null;uniqueIndex:idx_daily_sales_key" json:"channel"`
	SaleDate      time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_sales_key" json:"sale_date"`
	UnitsSold     int       `gorm:"not null;default:0" json:"units_sold"`
	UnitsReturned int       `gorm:"not null;default:0" json:"units_returned"`
	GMV           float64   `gorm:"not null;default:0" json:"gmv"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// --- DTOs ---

type EntryRow struct {
	SkuID         uuid.UUID `json:"sku_id"`
	UnitsSold     int       `json:"units_sold"`
	UnitsReturned int       `json:"units_returned"`
}

type SaveEntriesRequest struct {
	SaleDate    string     `json:"sale_date"`
	WarehouseID uuid.UUID  `json:"warehouse_id"`
	Channel     string     `json:"channel"`
	Entries     []EntryRow `json:"entries"`
}

type SaveEntriesResponse struct {
	Saved int     `json:"saved"`
	GMV   float64 `json:"gmv"`
}
