package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateOrgRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	GSTIN        string `json:"gstin"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

type OrgResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	GSTIN        string    `json:"gstin,omitempty"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Plan         string    `json:"plan"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
