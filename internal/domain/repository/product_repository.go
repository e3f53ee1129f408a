package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/pkg/pagination"
)

// ProductFilterParams holds filtering options for product listing
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	// LowStock restricts results to quantity <= LowStockThreshold.
	// The service fills the threshold from configuration.
	LowStock          bool
	LowStockThreshold int
	SortBy            string
	SortOrder         string
}

// ProductRepository defines the interface for product data operations.
// Quantity is only ever changed through the atomic adjustment methods so the
// check-then-decrement race cannot occur.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	// Update persists catalog fields only; it must never write Quantity.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// ListBelowQuantity returns products with quantity under the given threshold.
	ListBelowQuantity(ctx context.Context, threshold int) ([]entity.Product, error)

	// AtomicDecrementQuantity decrements stock only if at least amount is
	// available, using a conditional UPDATE and the affected-row count.
	// Returns false without mutating anything when stock is insufficient.
	AtomicDecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (bool, error)
	// AtomicIncrementQuantity unconditionally adds amount to stock.
	AtomicIncrementQuantity(ctx context.Context, id uuid.UUID, amount int) error
}
