package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/pkg/pagination"
)

// LedgerFilterParams holds filtering options for ledger transaction listing
type LedgerFilterParams struct {
	Pagination *pagination.PaginationParams
	CustomerID *uuid.UUID
	SupplierID *uuid.UUID
	Direction  *enum.LedgerDirection
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
}

// LedgerRepository defines the interface for ledger transaction data operations
type LedgerRepository interface {
	Create(ctx context.Context, txn *entity.LedgerTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LedgerTransaction, error)
	List(ctx context.Context, params *LedgerFilterParams) ([]entity.LedgerTransaction, int64, error)
	// ListByParty returns every posting for one customer or supplier in
	// creation order, without pagination, for balance folds.
	ListByParty(ctx context.Context, partyType enum.PartyType, partyID uuid.UUID) ([]entity.LedgerTransaction, error)
}
