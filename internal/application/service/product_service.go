package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	"github.com/Vyora-Platform/vendor-api/pkg/apperror"
	"github.com/Vyora-Platform/vendor-api/pkg/utils"
)

// ProductService handles catalog operations. It never touches Quantity;
// stock changes go through StockService only.
type ProductService struct {
	productRepo  repository.ProductRepository
	lowThreshold int
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, lowThreshold int) *ProductService {
	return &ProductService{productRepo: productRepo, lowThreshold: lowThreshold}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name      string
	Code      string
	Category  string
	Unit      string
	UnitPrice int64 // minor currency units
	Notes     *string
}

// CreateProduct creates a product with zero stock. Initial inventory arrives
// through a stock-in so the movement log starts complete.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	vendorID, err := vendorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Unit price cannot be negative")
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateProductCode()
	}

	product := &entity.Product{
		VendorID:  vendorID,
		Name:      input.Name,
		Slug:      utils.Slugify(input.Name) + "-" + uuid.New().String()[:8],
		Code:      code,
		Category:  input.Category,
		Unit:      input.Unit,
		UnitPrice: input.UnitPrice,
		Notes:     input.Notes,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name      *string
	Category  *string
	Unit      *string
	UnitPrice *int64
	Notes     *string
}

// UpdateProduct updates catalog fields on a product.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Unit price cannot be negative")
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.Notes != nil {
		product.Notes = input.Notes
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct returns one product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns the vendor's catalog, filtered and paginated.
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	if params.LowStock && params.LowStockThreshold == 0 {
		params.LowStockThreshold = s.lowThreshold
	}
	return s.productRepo.List(ctx, params)
}

// DeleteProduct soft-deletes a product. Its movement history stays intact.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}
