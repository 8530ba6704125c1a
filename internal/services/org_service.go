package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inventsight/inventsight-backend/internal/config"
	"github.com/inventsight/inventsight-backend/internal/dto"
	"github.com/inventsight/inventsight-backend/internal/models"
)

var (
	ErrNoOrganization = errors.New("no active organization membership")
	ErrSlugTaken      = errors.New("slug already in use")
	ErrAlreadyOnboard = errors.New("user already belongs to an organization")
)

type OrgService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewOrgService(db *gorm.DB, cfg *config.Config) *OrgService {
	return &OrgService{db: db, cfg: cfg}
}

// ActiveMembership finds the caller's single active membership, preloading the
// organization. At most one active membership per user is the invariant the
// whole request pipeline leans on.
func (s *OrgService) ActiveMembership(userID uuid.UUID) (*models.OrgMember, error) {
	var member models.OrgMember
	err := s.db.Preload("Organization").
		Where("user_id = ? AND is_active = true", userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOrganization
		}
		return nil, fmt.Errorf("membership lookup failed: %w", err)
	}
	return &member, nil
}

// CreateWithOwner runs the onboarding transaction: organization, owner
// membership, and the implicit trial subscription, all or nothing.
func (s *OrgService) CreateWithOwner(userID uuid.UUID, userEmail string, req *dto.CreateOrgRequest) (*models.Organization, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("brand name is required")
	}

	if _, err := s.ActiveMembership(userID); err == nil {
		return nil, ErrAlreadyOnboard
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return nil, errors.New("could not derive a slug from the brand name")
	}

	contactEmail := strings.TrimSpace(req.ContactEmail)
	if contactEmail == "" {
		contactEmail = userEmail
	}

	org := models.Organization{
		ID:           uuid.New(),
		Name:         name,
		Slug:         slug,
		ContactEmail: contactEmail,
		Plan:         models.SubscriptionStatusTrial,
		IsActive:     true,
	}
	if req.GSTIN != "" {
		gstin := strings.TrimSpace(req.GSTIN)
		org.GSTIN = &gstin
	}
	if req.ContactPhone != "" {
		phone := strings.TrimSpace(req.ContactPhone)
		org.ContactPhone = &phone
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var clash models.Organization
		if err := tx.Where("slug = ?", slug).First(&clash).Error; err == nil {
			return ErrSlugTaken
		}

		if err := tx.Create(&org).Error; err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		member := models.OrgMember{
			ID:       uuid.New(),
			OrgID:    org.ID,
			UserID:   userID,
			Role:     "owner",
			IsActive: true,
		}
		if err := tx.Create(&member).Error; err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}

		trialEnd := time.Now().AddDate(0, 0, s.cfg.TrialDays)
		sub := models.Subscription{
			ID:          uuid.New(),
			OrgID:       org.ID,
			Status:      models.SubscriptionStatusTrial,
			TrialEndsAt: &trialEnd,
		}
		if err := tx.Create(&sub).Error; err != nil {
			return fmt.Errorf("failed to create trial subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &org, nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug the same way the onboarding form does: lowercase,
// runs of anything non-alphanumeric collapse to a single hyphen, no leading or
// trailing hyphens.
func Slugify(name string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
