package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	infraRepo "github.com/Vyora-Platform/vendor-api/internal/infrastructure/repository"
)

func TestCreateProductStartsAtZeroStock(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, 10)
	ctx := infraRepo.WithVendor(context.Background(), uuid.New())

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:      "Rice 1kg",
		UnitPrice: 20000,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, product.Quantity)
	assert.NotEmpty(t, product.Slug)
	assert.NotEmpty(t, product.Code)
}

func TestCreateProductRequiresVendorContext(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, 10)

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:      "Rice 1kg",
		UnitPrice: 20000,
	})
	assert.Error(t, err)
}

func TestUpdateProductNeverWritesQuantity(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, 10)
	ctx := infraRepo.WithVendor(context.Background(), uuid.New())

	product := repo.add(&entity.Product{VendorID: uuid.New(), Name: "Rice 1kg", Quantity: 42})

	newPrice := int64(21000)
	updated, err := svc.UpdateProduct(ctx, product.ID, &UpdateProductInput{UnitPrice: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, int64(21000), updated.UnitPrice)

	// Quantity moves only through stock operations.
	stored, _ := repo.GetByID(ctx, product.ID)
	assert.Equal(t, 42, stored.Quantity)
}

func TestListProductsFillsLowStockThreshold(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewProductService(repo, 10)
	ctx := infraRepo.WithVendor(context.Background(), uuid.New())

	repo.add(&entity.Product{VendorID: uuid.New(), Name: "Rice 1kg", Quantity: 5})
	repo.add(&entity.Product{VendorID: uuid.New(), Name: "Oil 1L", Quantity: 50})

	products, total, err := svc.ListProducts(ctx, &repository.ProductFilterParams{LowStock: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Rice 1kg", products[0].Name)
}
