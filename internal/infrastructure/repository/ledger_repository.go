package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	domainRepo "github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger transaction repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Create(ctx context.Context, txn *entity.LedgerTransaction) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(txn).Error
}

func (r *ledgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LedgerTransaction, error) {
	var txn entity.LedgerTransaction
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Scopes(VendorScope(ctx)).
		First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *ledgerRepository) List(ctx context.Context, params *domainRepo.LedgerFilterParams) ([]entity.LedgerTransaction, int64, error) {
	var txns []entity.LedgerTransaction
	var total int64

	query := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.LedgerTransaction{}).
		Scopes(VendorScope(ctx))

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if params.Direction != nil {
		query = query.Where("direction = ?", *params.Direction)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&txns).Error

	return txns, total, err
}

func (r *ledgerRepository) ListByParty(ctx context.Context, partyType enum.PartyType, partyID uuid.UUID) ([]entity.LedgerTransaction, error) {
	var txns []entity.LedgerTransaction

	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Scopes(VendorScope(ctx))

	switch partyType {
	case enum.PartyTypeSupplier:
		query = query.Where("supplier_id = ?", partyID)
	default:
		query = query.Where("customer_id = ?", partyID)
	}

	err := query.Order("created_at ASC").Find(&txns).Error
	return txns, err
}
