package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key data operations
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, vendorID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, record *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
