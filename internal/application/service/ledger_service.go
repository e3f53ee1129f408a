package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	"github.com/Vyora-Platform/vendor-api/pkg/apperror"
)

// BalancePolicy is the vendor-level rule for exclude_from_balance postings.
// With CountExcluded false (the default) flagged postings contribute nothing
// to the displayed balance.
type BalancePolicy struct {
	CountExcluded bool
}

// postingContribution returns one posting's signed contribution to its
// party's balance. For a customer, value given out (credit extended) raises
// what they owe and money received lowers it; the supplier convention is the
// mirror image.
func postingContribution(partyType enum.PartyType, txn *entity.LedgerTransaction, policy BalancePolicy) int64 {
	if txn.ExcludeFromBalance && !policy.CountExcluded {
		return 0
	}
	sign := int64(1)
	if txn.Direction == enum.LedgerDirectionIn {
		sign = -1
	}
	if partyType == enum.PartyTypeSupplier {
		sign = -sign
	}
	return sign * txn.Amount
}

// FoldPartyBalance recomputes a party's balance from scratch. Each posting
// carries its own sign, so the fold is order-independent: any permutation of
// the same posting set produces the same balance.
func FoldPartyBalance(partyType enum.PartyType, postings []entity.LedgerTransaction, policy BalancePolicy) int64 {
	var balance int64
	for i := range postings {
		balance += postingContribution(partyType, &postings[i], policy)
	}
	return balance
}

// ApplyPosting adds one new posting's contribution to a cached balance.
// Folding from scratch and applying incrementally must agree; the balance
// tests check exactly that.
func ApplyPosting(balance int64, partyType enum.PartyType, txn *entity.LedgerTransaction, policy BalancePolicy) int64 {
	return balance + postingContribution(partyType, txn, policy)
}

// Settled reports whether a balance is exactly zero. Amounts are integer
// minor units, so no epsilon comparison is needed or permitted.
func Settled(balance int64) bool {
	return balance == 0
}

// LedgerService owns khata postings and party balances.
type LedgerService struct {
	ledgerRepo    repository.LedgerRepository
	vendorRepo    repository.VendorRepository
	defaultPolicy BalancePolicy
}

// NewLedgerService creates a new ledger service. defaultPolicy applies to
// vendors that have not chosen their own exclude_from_balance policy.
func NewLedgerService(
	ledgerRepo repository.LedgerRepository,
	vendorRepo repository.VendorRepository,
	defaultPolicy BalancePolicy,
) *LedgerService {
	return &LedgerService{
		ledgerRepo:    ledgerRepo,
		vendorRepo:    vendorRepo,
		defaultPolicy: defaultPolicy,
	}
}

// policyFor resolves the balance policy for the vendor in context.
func (s *LedgerService) policyFor(ctx context.Context, vendorID uuid.UUID) (BalancePolicy, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return s.defaultPolicy, err
	}
	if vendor == nil {
		return s.defaultPolicy, nil
	}
	if vendor.Settings.CountExcludedPostings {
		return BalancePolicy{CountExcluded: true}, nil
	}
	return s.defaultPolicy, nil
}

// PartyBalanceView is a party's derived balance. Positive means the party
// owes the vendor ("you will GET") for customers, and the vendor owes the
// party for suppliers.
type PartyBalanceView struct {
	PartyType enum.PartyType `json:"party_type"`
	PartyID   uuid.UUID      `json:"party_id"`
	Balance   int64          `json:"balance"`
	Settled   bool           `json:"settled"`
	Postings  int            `json:"postings"`
}

// GetPartyBalance folds every posting for one customer or supplier.
func (s *LedgerService) GetPartyBalance(ctx context.Context, partyType enum.PartyType, partyID uuid.UUID) (*PartyBalanceView, error) {
	vendorID, err := vendorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	policy, err := s.policyFor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	postings, err := s.ledgerRepo.ListByParty(ctx, partyType, partyID)
	if err != nil {
		return nil, err
	}

	balance := FoldPartyBalance(partyType, postings, policy)
	return &PartyBalanceView{
		PartyType: partyType,
		PartyID:   partyID,
		Balance:   balance,
		Settled:   Settled(balance),
		Postings:  len(postings),
	}, nil
}

// CreatePostingInput represents a manual khata entry
type CreatePostingInput struct {
	CustomerID         *uuid.UUID
	SupplierID         *uuid.UUID
	Direction          enum.LedgerDirection
	Amount             int64
	Category           string
	PaymentMethod      string
	ExcludeFromBalance bool
	Note               *string
}

// CreatePosting appends a manual ledger entry. Postings are immutable;
// corrections are made with a new offsetting posting.
func (s *LedgerService) CreatePosting(ctx context.Context, input *CreatePostingInput) (*entity.LedgerTransaction, error) {
	vendorID, err := vendorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if (input.CustomerID == nil) == (input.SupplierID == nil) {
		return nil, apperror.NewBadRequestError("Exactly one of customer and supplier is required")
	}
	if !input.Direction.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown ledger direction")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}

	txn := &entity.LedgerTransaction{
		VendorID:           vendorID,
		CustomerID:         input.CustomerID,
		SupplierID:         input.SupplierID,
		Direction:          input.Direction,
		Amount:             input.Amount,
		Category:           input.Category,
		PaymentMethod:      input.PaymentMethod,
		ExcludeFromBalance: input.ExcludeFromBalance,
		Note:               input.Note,
	}
	if err := s.ledgerRepo.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns the vendor's postings, filtered and paginated.
func (s *LedgerService) ListTransactions(ctx context.Context, params *repository.LedgerFilterParams) ([]entity.LedgerTransaction, int64, error) {
	return s.ledgerRepo.List(ctx, params)
}
