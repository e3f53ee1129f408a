package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/pkg/pagination"
)

// MovementFilterParams holds filtering options for stock movement history
type MovementFilterParams struct {
	Pagination *pagination.PaginationParams
	ProductID  *uuid.UUID
	Direction  *enum.StockDirection
	StartDate  *time.Time
	EndDate    *time.Time
}

// StockMovementRepository defines the interface for stock movement data operations
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	List(ctx context.Context, params *MovementFilterParams) ([]entity.StockMovement, int64, error)
	// ListByProduct returns all movements for a product in creation order.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.StockMovement, error)
}
