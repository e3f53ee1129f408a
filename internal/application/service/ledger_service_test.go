package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	infraRepo "github.com/Vyora-Platform/vendor-api/internal/infrastructure/repository"
)

func posting(direction enum.LedgerDirection, amount int64, excluded bool) entity.LedgerTransaction {
	return entity.LedgerTransaction{
		ID:                 uuid.New(),
		Direction:          direction,
		Amount:             amount,
		ExcludeFromBalance: excluded,
	}
}

func TestFoldPartyBalanceCustomer(t *testing.T) {
	policy := BalancePolicy{}
	postings := []entity.LedgerTransaction{
		posting(enum.LedgerDirectionOut, 13600, false), // credit extended
		posting(enum.LedgerDirectionIn, 5000, false),   // collection
	}

	balance := FoldPartyBalance(enum.PartyTypeCustomer, postings, policy)
	assert.Equal(t, int64(8600), balance)
	assert.False(t, Settled(balance))
}

func TestFoldPartyBalanceSupplierInverted(t *testing.T) {
	policy := BalancePolicy{}
	postings := []entity.LedgerTransaction{
		posting(enum.LedgerDirectionOut, 13600, false),
		posting(enum.LedgerDirectionIn, 5000, false),
	}

	customer := FoldPartyBalance(enum.PartyTypeCustomer, postings, policy)
	supplier := FoldPartyBalance(enum.PartyTypeSupplier, postings, policy)
	assert.Equal(t, customer, -supplier)
}

func TestFoldPartyBalanceExcludedPostings(t *testing.T) {
	postings := []entity.LedgerTransaction{
		posting(enum.LedgerDirectionIn, 10000, true), // cash at checkout
		posting(enum.LedgerDirectionOut, 13600, false),
	}

	// Default policy: the excluded in-posting contributes nothing, so the
	// customer owes the full due.
	assert.Equal(t, int64(13600), FoldPartyBalance(enum.PartyTypeCustomer, postings, BalancePolicy{}))

	// Opt-in policy counts everything.
	assert.Equal(t, int64(3600), FoldPartyBalance(enum.PartyTypeCustomer, postings, BalancePolicy{CountExcluded: true}))
}

func TestFoldPartyBalanceOrderIndependent(t *testing.T) {
	policy := BalancePolicy{}
	postings := []entity.LedgerTransaction{
		posting(enum.LedgerDirectionOut, 100, false),
		posting(enum.LedgerDirectionIn, 40, false),
		posting(enum.LedgerDirectionOut, 260, true),
		posting(enum.LedgerDirectionIn, 15, false),
		posting(enum.LedgerDirectionOut, 9, false),
	}

	want := FoldPartyBalance(enum.PartyTypeCustomer, postings, policy)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]entity.LedgerTransaction, len(postings))
		copy(shuffled, postings)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, FoldPartyBalance(enum.PartyTypeCustomer, shuffled, policy))
	}
}

func TestApplyPostingMatchesFold(t *testing.T) {
	policy := BalancePolicy{}
	postings := []entity.LedgerTransaction{
		posting(enum.LedgerDirectionOut, 100, false),
		posting(enum.LedgerDirectionIn, 40, true),
		posting(enum.LedgerDirectionOut, 7, false),
		posting(enum.LedgerDirectionIn, 67, false),
	}

	var incremental int64
	for i := range postings {
		incremental = ApplyPosting(incremental, enum.PartyTypeCustomer, &postings[i], policy)
		assert.Equal(t, FoldPartyBalance(enum.PartyTypeCustomer, postings[:i+1], policy), incremental)
	}
}

func TestSettledIsExactZero(t *testing.T) {
	assert.True(t, Settled(0))
	assert.False(t, Settled(1))
	assert.False(t, Settled(-1))
}

func TestGetPartyBalance(t *testing.T) {
	ledgerRepo := &mockLedgerRepo{}
	vendorRepo := newMockVendorRepo()
	vendor := vendorRepo.add(&entity.Vendor{Name: "Sharma General Store", Slug: "sharma-general-store"})
	svc := NewLedgerService(ledgerRepo, vendorRepo, BalancePolicy{})

	customerID := uuid.New()
	ctx := infraRepo.WithVendor(context.Background(), vendor.ID)

	for _, p := range []entity.LedgerTransaction{
		posting(enum.LedgerDirectionIn, 10000, true),
		posting(enum.LedgerDirectionOut, 13600, false),
		posting(enum.LedgerDirectionIn, 13600, false),
	} {
		p.VendorID = vendor.ID
		p.CustomerID = &customerID
		require.NoError(t, ledgerRepo.Create(ctx, &p))
	}

	view, err := svc.GetPartyBalance(ctx, enum.PartyTypeCustomer, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), view.Balance)
	assert.True(t, view.Settled)
	assert.Equal(t, 3, view.Postings)
}

func TestGetPartyBalanceVendorPolicyOverride(t *testing.T) {
	ledgerRepo := &mockLedgerRepo{}
	vendorRepo := newMockVendorRepo()
	vendor := vendorRepo.add(&entity.Vendor{
		Name:     "Sharma General Store",
		Slug:     "sharma-general-store",
		Settings: entity.VendorSettings{CountExcludedPostings: true},
	})
	svc := NewLedgerService(ledgerRepo, vendorRepo, BalancePolicy{})

	customerID := uuid.New()
	ctx := infraRepo.WithVendor(context.Background(), vendor.ID)

	excluded := posting(enum.LedgerDirectionIn, 5000, true)
	excluded.VendorID = vendor.ID
	excluded.CustomerID = &customerID
	require.NoError(t, ledgerRepo.Create(ctx, &excluded))

	view, err := svc.GetPartyBalance(ctx, enum.PartyTypeCustomer, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(-5000), view.Balance)
}

func TestCreatePostingRequiresExactlyOneParty(t *testing.T) {
	ledgerRepo := &mockLedgerRepo{}
	vendorRepo := newMockVendorRepo()
	vendor := vendorRepo.add(&entity.Vendor{Name: "Sharma General Store", Slug: "sharma-general-store"})
	svc := NewLedgerService(ledgerRepo, vendorRepo, BalancePolicy{})

	ctx := infraRepo.WithVendor(context.Background(), vendor.ID)
	customerID := uuid.New()
	supplierID := uuid.New()

	_, err := svc.CreatePosting(ctx, &CreatePostingInput{
		Direction: enum.LedgerDirectionOut,
		Amount:    100,
	})
	assert.Error(t, err)

	_, err = svc.CreatePosting(ctx, &CreatePostingInput{
		CustomerID: &customerID,
		SupplierID: &supplierID,
		Direction:  enum.LedgerDirectionOut,
		Amount:     100,
	})
	assert.Error(t, err)

	_, err = svc.CreatePosting(ctx, &CreatePostingInput{
		CustomerID: &customerID,
		Direction:  enum.LedgerDirectionOut,
		Amount:     100,
	})
	assert.NoError(t, err)
}

func TestCreatePostingRejectsNonPositiveAmount(t *testing.T) {
	ledgerRepo := &mockLedgerRepo{}
	vendorRepo := newMockVendorRepo()
	vendor := vendorRepo.add(&entity.Vendor{Name: "Sharma General Store", Slug: "sharma-general-store"})
	svc := NewLedgerService(ledgerRepo, vendorRepo, BalancePolicy{})

	ctx := infraRepo.WithVendor(context.Background(), vendor.ID)
	customerID := uuid.New()

	for _, amount := range []int64{0, -100} {
		_, err := svc.CreatePosting(ctx, &CreatePostingInput{
			CustomerID: &customerID,
			Direction:  enum.LedgerDirectionIn,
			Amount:     amount,
		})
		assert.Error(t, err, "amount %d", amount)
	}
}
