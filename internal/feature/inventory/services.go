package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inventsight/inventsight-backend/internal/tenant"
)

var (
	ErrSkuCodeTaken   = errors.New("sku code already exists")
	ErrNotFound       = errors.New("record not found")
	ErrNoWarehouses   = errors.New("add at least one warehouse before adding SKUs")
	ErrInvalidLeadTime = errors.New("lead_time_type must be procurement or manufacturing")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) CreateBrand(orgID uuid.UUID, name string) (*Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	brand := Brand{ID: uuid.New(), OrgID: orgID, Name: name}
	if err := s.db.Create(&brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return &brand, nil
}

func (s *Service) ListBrands(orgID uuid.UUID) ([]Brand, error) {
	var brands []Brand
	err := s.db.Scopes(tenant.ForOrg(orgID)).Order("name").Find(&brands).Error
	return brands, err
}

func (s *Service) CreateCategory(orgID uuid.UUID, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	category := Category{ID: uuid.New(), OrgID: orgID, Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *Service) ListCategories(orgID uuid.UUID) ([]Category, error) {
	var categories []Category
	err := s.db.Scopes(tenant.ForOrg(orgID)).Order("name").Find(&categories).Error
	return categories, err
}

func (s *Service) CreateWarehouse(orgID uuid.UUID, req *CreateWarehouseRequest) (*Warehouse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	wh := Warehouse{
		ID:       uuid.New(),
		OrgID:    orgID,
		Name:     name,
		City:     strings.TrimSpace(req.City),
		IsActive: true,
	}
	if err := s.db.Create(&wh).Error; err != nil {
		return nil, fmt.Errorf("failed to create warehouse: %w", err)
	}
	return &wh, nil
}

func (s *Service) ListWarehouses(orgID uuid.UUID) ([]Warehouse, error) {
	var warehouses []Warehouse
	err := s.db.Scopes(tenant.ForOrg(orgID)).
		Where("is_active = true").Order("name").Find(&warehouses).Error
	return warehouses, err
}

// DeactivateWarehouse soft-disables; history (stock, sales) stays intact.
func (s *Service) DeactivateWarehouse(orgID, id uuid.UUID) error {
	res := s.db.Model(&Warehouse{}).Scopes(tenant.ForOrg(orgID)).
		Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateSku inserts the SKU plus one opening-stock row per warehouse with a
// quantity, in a single transaction. A catalog with zero warehouses cannot
// take SKUs; the UI shows the same warning.
func (s *Service) CreateSku(orgID uuid.UUID, req *CreateSkuRequest) (*Sku, error) {
	if strings.TrimSpace(req.SkuCode) == "" || strings.TrimSpace(req.ItemName) == "" {
		return nil, errors.New("sku_code and item_name are required")
	}
	if req.LeadTimeType != "procurement" && req.LeadTimeType != "manufacturing" {
		return nil, ErrInvalidLeadTime
	}

	var warehouseCount int64
	if err := s.db.Model(&Warehouse{}).Scopes(tenant.ForOrg(orgID)).
		Where("is_active = true").Count(&warehouseCount).Error; err != nil {
		return nil, err
	}
	if warehouseCount == 0 {
		return nil, ErrNoWarehouses
	}

	openingDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.OpeningDate != "" {
		parsed, err := time.Parse("2006-01-02", req.OpeningDate)
		if err != nil {
			return nil, errors.New("opening_date must be YYYY-MM-DD")
		}
		openingDate = parsed
	}

	minOrderQty := req.MinimumOrderQty
	if minOrderQty <= 0 {
		minOrderQty = 1
	}

	sku := Sku{
		ID:              uuid.New(),
		OrgID:           orgID,
		SkuCode:         strings.TrimSpace(req.SkuCode),
		ItemName:        strings.TrimSpace(req.ItemName),
		VariantName:     optional(req.VariantName),
		ParentASIN:      optional(req.ParentASIN),
		ChildASIN:       optional(req.ChildASIN),
		BrandID:         req.BrandID,
		CategoryID:      req.CategoryID,
		MRP:             req.MRP,
		CostPrice:       req.CostPrice,
		SellingPrice:    req.SellingPrice,
		LeadTimeDays:    req.LeadTimeDays,
		LeadTimeType:    req.LeadTimeType,
		VendorName:      optional(req.VendorName),
		MinimumOrderQty: minOrderQty,
		HSNCode:         optional(req.HSNCode),
		IsActive:        true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var clash Sku
		if err := tx.Scopes(tenant.ForOrg(orgID)).
			Where("sku_code = ?", sku.SkuCode).First(&clash).Error; err == nil {
			return ErrSkuCodeTaken
		}

		if err := tx.Create(&sku).Error; err != nil {
			return fmt.Errorf("failed to create sku: %w", err)
		}

		for _, ws := range req.WarehouseStocks {
			if ws.Qty < 0 {
				continue
			}
			stock := SkuWarehouseStock{
				ID:          uuid.New(),
				OrgID:       orgID,
				SkuID:       sku.ID,
				WarehouseID: ws.WarehouseID,
				OpeningQty:  ws.Qty,
				OpeningDate: openingDate,
				CurrentQty:  ws.Qty,
			}
			if err := tx.Create(&stock).Error; err != nil {
				return fmt.Errorf("failed to create opening stock: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &sku, nil
}

func (s *Service) ListSkus(orgID uuid.UUID) ([]Sku, error) {
	var skus []Sku
	err := s.db.Scopes(tenant.ForOrg(orgID)).
		Where("is_active = true").
		Preload("Brand").
		Preload("Category").
		Preload("Stocks").
		Preload("Stocks.Warehouse").
		Order("item_name").
		Find(&skus).Error
	return skus, err
}

// DeactivateSku soft-deletes: the SKU drops out of entry screens but keeps its
// sales history for metrics.
func (s *Service) DeactivateSku(orgID, id uuid.UUID) error {
	res := s.db.Model(&Sku{}).Scopes(tenant.ForOrg(orgID)).
		Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
