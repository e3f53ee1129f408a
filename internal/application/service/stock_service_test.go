package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/pkg/apperror"
)

func newStockFixture() (*StockService, *mockProductRepo, *mockMovementRepo) {
	productRepo := newMockProductRepo()
	movementRepo := &mockMovementRepo{}
	svc := NewStockService(productRepo, movementRepo, &fakeTxManager{}, 10, 100)
	return svc, productRepo, movementRepo
}

func TestStockInRecordsMovement(t *testing.T) {
	svc, productRepo, movementRepo := newStockFixture()
	product := productRepo.add(&entity.Product{VendorID: uuid.New(), Name: "Rice 1kg", Quantity: 5})

	movement, err := svc.StockIn(context.Background(), &StockInInput{
		ProductID: product.ID,
		Quantity:  20,
		Reason:    "purchase",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.StockDirectionIn, movement.Direction)
	assert.Equal(t, 5, movement.PreviousQuantity)
	assert.Equal(t, 25, movement.NewQuantity)

	updated, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, 25, updated.Quantity)
	assert.Len(t, movementRepo.movements, 1)
}

func TestStockOutRecordsMovement(t *testing.T) {
	svc, productRepo, _ := newStockFixture()
	product := productRepo.add(&entity.Product{VendorID: uuid.New(), Name: "Rice 1kg", Quantity: 10})

	movement, err := svc.StockOut(context.Background(), product.ID, 4, "sale", nil)
	require.NoError(t, err)

	assert.Equal(t, enum.StockDirectionOut, movement.Direction)
	assert.Equal(t, 10, movement.PreviousQuantity)
	assert.Equal(t, 6, movement.NewQuantity)

	updated, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, 6, updated.Quantity)
}

func TestStockOutInsufficientMutatesNothing(t *testing.T) {
	svc, productRepo, movementRepo := newStockFixture()
	product := productRepo.add(&entity.Product{VendorID: uuid.New(), Name: "Rice 1kg", Quantity: 3})

	_, err := svc.StockOut(context.Background(), product.ID, 5, "sale", nil)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, map[string]int{"available": 3, "requested": 5}, appErr.Details)

	// The failed stock-out left quantity and the movement log untouched.
	updated, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, 3, updated.Quantity)
	assert.Empty(t, movementRepo.movements)
}

func TestStockConservation(t *testing.T) {
	svc, productRepo, movementRepo := newStockFixture()
	product := productRepo.add(&entity.Product{VendorID: uuid.New(), Name: "Rice 1kg", Quantity: 0})

	ops := []struct {
		in  bool
		qty int
	}{
		{true, 50}, {false, 12}, {true, 7}, {false, 30}, {false, 15}, {true, 3},
	}
	for _, op := range ops {
		var err error
		if op.in {
			_, err = svc.StockIn(context.Background(), &StockInInput{ProductID: product.ID, Quantity: op.qty, Reason: "adjustment"})
		} else {
			_, err = svc.StockOut(context.Background(), product.ID, op.qty, "sale", nil)
		}
		require.NoError(t, err)
	}

	// Replaying the movement log from the initial quantity reproduces the
	// current stock exactly.
	replayed := 0
	for _, mv := range movementRepo.movements {
		replayed += mv.Direction.Sign() * mv.Quantity
	}
	updated, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, updated.Quantity, replayed)

	// Each movement's before/after pair is internally consistent too.
	for _, mv := range movementRepo.movements {
		assert.Equal(t, mv.NewQuantity, mv.PreviousQuantity+mv.Direction.Sign()*mv.Quantity)
	}
}

func TestReserveDoesNotMutate(t *testing.T) {
	svc, productRepo, movementRepo := newStockFixture()
	product := productRepo.add(&entity.Product{VendorID: uuid.New(), Name: "Rice 1kg", Quantity: 8})

	require.NoError(t, svc.Reserve(context.Background(), product.ID, 8))
	assert.Error(t, svc.Reserve(context.Background(), product.ID, 9))

	updated, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, 8, updated.Quantity)
	assert.Empty(t, movementRepo.movements)
}

func TestStockInRejectsNonPositiveQuantity(t *testing.T) {
	svc, productRepo, _ := newStockFixture()
	product := productRepo.add(&entity.Product{VendorID: uuid.New(), Name: "Rice 1kg", Quantity: 5})

	_, err := svc.StockIn(context.Background(), &StockInInput{ProductID: product.ID, Quantity: 0, Reason: "x"})
	assert.Error(t, err)
	_, err = svc.StockOut(context.Background(), product.ID, -1, "x", nil)
	assert.Error(t, err)
}

func TestGetStockLevelClassification(t *testing.T) {
	svc, productRepo, _ := newStockFixture()

	tests := []struct {
		quantity int
		level    enum.StockLevel
	}{
		{0, enum.StockLevelOut},
		{5, enum.StockLevelLow},
		{10, enum.StockLevelNormal},
		{100, enum.StockLevelNormal},
		{101, enum.StockLevelHigh},
	}
	for _, tt := range tests {
		product := productRepo.add(&entity.Product{VendorID: uuid.New(), Name: "Rice 1kg", Quantity: tt.quantity})
		view, err := svc.GetStockLevel(context.Background(), product.ID)
		require.NoError(t, err)
		assert.Equal(t, tt.level, view.Level, "quantity %d", tt.quantity)
	}
}

func TestStockOutUnknownProduct(t *testing.T) {
	svc, _, _ := newStockFixture()

	_, err := svc.StockOut(context.Background(), uuid.New(), 1, "sale", nil)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
