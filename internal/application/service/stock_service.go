package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	infraRepo "github.com/Vyora-Platform/vendor-api/internal/infrastructure/repository"
	"github.com/Vyora-Platform/vendor-api/pkg/apperror"
)

// StockService owns every change to product quantities. Each mutation runs as
// one transaction that adjusts the product with a conditional UPDATE and
// appends exactly one movement row carrying the before/after quantities, so
// the movement log and the live quantity cannot drift apart.
type StockService struct {
	productRepo   repository.ProductRepository
	movementRepo  repository.StockMovementRepository
	txManager     repository.TxManager
	lowThreshold  int
	highThreshold int
}

// NewStockService creates a new stock service
func NewStockService(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	txManager repository.TxManager,
	lowThreshold, highThreshold int,
) *StockService {
	return &StockService{
		productRepo:   productRepo,
		movementRepo:  movementRepo,
		txManager:     txManager,
		lowThreshold:  lowThreshold,
		highThreshold: highThreshold,
	}
}

// StockInInput represents the stock-in input
type StockInInput struct {
	ProductID  uuid.UUID
	Quantity   int
	Reason     string
	SupplierID *uuid.UUID
	BatchNo    *string
}

// StockIn increases a product's quantity and appends the movement.
func (s *StockService) StockIn(ctx context.Context, input *StockInInput) (*entity.StockMovement, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	var movement *entity.StockMovement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		product, err := s.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return apperror.NewNotFoundError("Product")
		}

		if err := s.productRepo.AtomicIncrementQuantity(ctx, product.ID, input.Quantity); err != nil {
			return err
		}

		// Re-read inside the transaction; the row lock taken by the update
		// guarantees this is the exact post-mutation quantity.
		updated, err := s.productRepo.GetByID(ctx, product.ID)
		if err != nil {
			return err
		}

		movement = &entity.StockMovement{
			VendorID:         product.VendorID,
			ProductID:        product.ID,
			Direction:        enum.StockDirectionIn,
			Quantity:         input.Quantity,
			PreviousQuantity: updated.Quantity - input.Quantity,
			NewQuantity:      updated.Quantity,
			Reason:           input.Reason,
			SupplierID:       input.SupplierID,
			BatchNo:          input.BatchNo,
		}
		return s.movementRepo.Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// StockOut decreases a product's quantity and appends the movement. The
// decrement is a conditional UPDATE; when stock is insufficient nothing is
// mutated and InsufficientStock carries the quantities observed.
func (s *StockService) StockOut(ctx context.Context, productID uuid.UUID, quantity int, reason string, billID *uuid.UUID) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	var movement *entity.StockMovement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return apperror.NewNotFoundError("Product")
		}

		ok, err := s.productRepo.AtomicDecrementQuantity(ctx, product.ID, quantity)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewInsufficientStockError(product.Quantity, quantity)
		}

		updated, err := s.productRepo.GetByID(ctx, product.ID)
		if err != nil {
			return err
		}

		movement = &entity.StockMovement{
			VendorID:         product.VendorID,
			ProductID:        product.ID,
			Direction:        enum.StockDirectionOut,
			Quantity:         quantity,
			PreviousQuantity: updated.Quantity + quantity,
			NewQuantity:      updated.Quantity,
			Reason:           reason,
			BillID:           billID,
		}
		return s.movementRepo.Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// Reserve checks availability without mutating anything. The client calls it
// at cart-add and quantity-increment time; the checkout commit re-validates
// with the atomic decrement, so a passing reserve is advisory, not a hold.
func (s *StockService) Reserve(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return apperror.NewBadRequestError("Quantity must be positive")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	if quantity > product.Quantity {
		return apperror.NewInsufficientStockError(product.Quantity, quantity)
	}
	return nil
}

// GetMovements returns the movement history for the vendor in context.
func (s *StockService) GetMovements(ctx context.Context, params *repository.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	return s.movementRepo.List(ctx, params)
}

// StockLevelView pairs a product with its threshold classification.
type StockLevelView struct {
	Product *entity.Product `json:"product"`
	Level   enum.StockLevel `json:"level"`
}

// GetStockLevel classifies one product's quantity against the configured
// thresholds.
func (s *StockService) GetStockLevel(ctx context.Context, productID uuid.UUID) (*StockLevelView, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return &StockLevelView{
		Product: product,
		Level:   enum.ClassifyStock(product.Quantity, s.lowThreshold, s.highThreshold),
	}, nil
}

// GetLowStock returns products at or below the low threshold.
func (s *StockService) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.ListBelowQuantity(ctx, s.lowThreshold)
}

// vendorFromContext pulls the vendor scope the middleware stored.
func vendorFromContext(ctx context.Context) (uuid.UUID, error) {
	vendorID, ok := infraRepo.GetVendorID(ctx)
	if !ok {
		return uuid.Nil, apperror.NewBadRequestError("Vendor context required")
	}
	return vendorID, nil
}
