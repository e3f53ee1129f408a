package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
)

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Vendor, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, settings entity.VendorSettings) error
}
