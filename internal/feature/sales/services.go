package sales

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inventsight/inventsight-backend/internal/feature/inventory"
	"github.com/inventsight/inventsight-backend/internal/tenant"
)

var (
	ErrInvalidChannel = errors.New("channel must be amazon_india, flipkart or meesho")
	ErrNoEntries      = errors.New("enter at least one sale or return before saving")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func ValidChannel(channel string) bool {
	switch channel {
	case ChannelAmazonIndia, ChannelFlipkart, ChannelMeesho:
		return true
	}
	return false
}

// GMV is units sold times selling price, kept in paise-free rupees rounded to
// two decimals. Returns do not subtract from GMV; they are tracked separately.
func GMV(unitsSold int, sellingPrice float64) float64 {
	return math.Round(float64(unitsSold)*sellingPrice*100) / 100
}

// SaveEntries upserts the day's rows for one warehouse and channel. A row that
// already exists for the (sku, warehouse, channel, date) key updates in place,
// so re-saving the screen is idempotent.
func (s *Service) SaveEntries(orgID uuid.UUID, req *SaveEntriesRequest) (*SaveEntriesResponse, error) {
	if !ValidChannel(req.Channel) {
		return nil, ErrInvalidChannel
	}
	saleDate, err := time.Parse("2006-01-02", req.SaleDate)
	if err != nil {
		return nil, errors.New("sale_date must be YYYY-MM-DD")
	}
	if len(req.Entries) == 0 {
		return nil, ErrNoEntries
	}

	resp := &SaveEntriesResponse{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Entries {
			if entry.UnitsSold == 0 && entry.UnitsReturned == 0 {
				continue
			}
			if entry.UnitsSold < 0 || entry.UnitsReturned < 0 {
				return errors.New("units cannot be negative")
			}

			var sku inventory.Sku
			if err := tx.Scopes(tenant.ForOrg(orgID)).
				Where("id = ?", entry.SkuID).First(&sku).Error; err != nil {
				return fmt.Errorf("unknown sku %s: %w", entry.SkuID, err)
			}

			gmv := GMV(entry.UnitsSold, sku.SellingPrice)

			var existing DailySale
			err := tx.Scopes(tenant.ForOrg(orgID)).
				Where("sku_id = ? AND warehouse_id = ? AND channel = ? AND sale_date = ?",
					entry.SkuID, req.WarehouseID, req.Channel, saleDate).
				First(&existing).Error

			if err == nil {
				if err := tx.Model(&existing).Updates(map[string]interface{}{
					"units_sold":     entry.UnitsSold,
					"units_returned": entry.UnitsReturned,
					"gmv":            gmv,
				}).Error; err != nil {
					return fmt.Errorf("failed to update sale row: %w", err)
				}
			} else if errors.Is(err, gorm.ErrRecordNotFound) {
				row := DailySale{
					ID:            uuid.New(),
					OrgID:         orgID,
					SkuID:         entry.SkuID,
					WarehouseID:   req.WarehouseID,
					Channel:       req.Channel,
					SaleDate:      saleDate,
					UnitsSold:     entry.UnitsSold,
					UnitsReturned: entry.UnitsReturned,
					GMV:           gmv,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to create sale row: %w", err)
				}
			} else {
				return fmt.Errorf("sale lookup failed: %w", err)
			}

			resp.Saved++
			resp.GMV += gmv
		}

		if resp.Saved == 0 {
			return ErrNoEntries
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListForDay returns the stored rows for one date, warehouse and channel so the
// entry screen can pre-fill.
func (s *Service) ListForDay(orgID, warehouseID uuid.UUID, channel, date string) ([]DailySale, error) {
	if !ValidChannel(channel) {
		return nil, ErrInvalidChannel
	}
	saleDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	var rows []DailySale
	err = s.db.Scopes(tenant.ForOrg(orgID)).
		Where("warehouse_id = ? AND channel = ? AND sale_date = ?", warehouseID, channel, saleDate).
		Find(&rows).Error
	return rows, err
}
