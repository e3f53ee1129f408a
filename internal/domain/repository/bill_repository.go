package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/pkg/pagination"
)

// BillFilterParams holds filtering options for bill listing
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	CustomerID *uuid.UUID
	Status     *enum.PaymentStatus
	StartDate  *time.Time
	EndDate    *time.Time
}

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	// Create persists the bill together with its items and charges.
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	// GetWithDetails loads the bill with items, charges and customer.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	// UpdatePayment writes the paid/due/status fields after a due collection.
	UpdatePayment(ctx context.Context, bill *entity.Bill) error
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
}
