package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Vyora-Platform/vendor-api/internal/domain/entity"
	"github.com/Vyora-Platform/vendor-api/internal/domain/enum"
	"github.com/Vyora-Platform/vendor-api/internal/domain/repository"
	"github.com/Vyora-Platform/vendor-api/pkg/pagination"
)

// ============================================================================
// IN-MEMORY MOCKS
// ============================================================================

// fakeTxManager runs the callback inline. rolledBack records whether the
// last Do returned an error, i.e. whether a real transaction would have
// rolled back.
type fakeTxManager struct {
	rolledBack bool
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	m.rolledBack = err != nil
	return err
}

type mockProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (m *mockProductRepo) add(p *entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.products[p.ID] = p
	return p
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.add(product)
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (m *mockProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.products[product.ID]
	if !ok {
		return nil
	}
	quantity := existing.Quantity
	copied := *product
	copied.Quantity = quantity
	m.products[product.ID] = &copied
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Product
	for _, p := range m.products {
		if params.LowStock && p.Quantity > params.LowStockThreshold {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) ListBelowQuantity(ctx context.Context, threshold int) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Product
	for _, p := range m.products {
		if p.Quantity <= threshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) AtomicDecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok || p.Quantity < amount {
		return false, nil
	}
	p.Quantity -= amount
	return true, nil
}

func (m *mockProductRepo) AtomicIncrementQuantity(ctx context.Context, id uuid.UUID, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		p.Quantity += amount
	}
	return nil
}

type mockMovementRepo struct {
	movements []entity.StockMovement
	createErr error
}

func (m *mockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if m.createErr != nil {
		return m.createErr
	}
	if movement.ID == uuid.Nil {
		movement.ID = uuid.New()
	}
	m.movements = append(m.movements, *movement)
	return nil
}

func (m *mockMovementRepo) List(ctx context.Context, params *repository.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	return m.movements, int64(len(m.movements)), nil
}

func (m *mockMovementRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	for _, mv := range m.movements {
		if mv.ProductID == productID {
			out = append(out, mv)
		}
	}
	return out, nil
}

type mockCouponRepo struct {
	coupons map[uuid.UUID]*entity.Coupon
	usages  []entity.CouponUsage
}

func newMockCouponRepo() *mockCouponRepo {
	return &mockCouponRepo{coupons: make(map[uuid.UUID]*entity.Coupon)}
}

func (m *mockCouponRepo) add(c *entity.Coupon) *entity.Coupon {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.coupons[c.ID] = c
	return c
}

func (m *mockCouponRepo) Create(ctx context.Context, coupon *entity.Coupon) error {
	m.add(coupon)
	return nil
}

func (m *mockCouponRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	if c, ok := m.coupons[id]; ok {
		return c, nil
	}
	return nil, nil
}

func (m *mockCouponRepo) GetByCode(ctx context.Context, vendorID uuid.UUID, code string) (*entity.Coupon, error) {
	for _, c := range m.coupons {
		if c.VendorID == vendorID && c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCouponRepo) CountUsages(ctx context.Context, couponID uuid.UUID) (int64, error) {
	var n int64
	for _, u := range m.usages {
		if u.CouponID == couponID {
			n++
		}
	}
	return n, nil
}

func (m *mockCouponRepo) CreateUsage(ctx context.Context, usage *entity.CouponUsage) error {
	m.usages = append(m.usages, *usage)
	return nil
}

type mockBillRepo struct {
	bills     map[uuid.UUID]*entity.Bill
	createErr error
}

func newMockBillRepo() *mockBillRepo {
	return &mockBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

func (m *mockBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	if m.createErr != nil {
		return m.createErr
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	m.bills[bill.ID] = bill
	return nil
}

func (m *mockBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	if b, ok := m.bills[id]; ok {
		return b, nil
	}
	return nil, nil
}

func (m *mockBillRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	return m.GetByID(ctx, id)
}

func (m *mockBillRepo) UpdatePayment(ctx context.Context, bill *entity.Bill) error {
	m.bills[bill.ID] = bill
	return nil
}

func (m *mockBillRepo) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	var out []entity.Bill
	for _, b := range m.bills {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

type mockOrderRepo struct {
	orders    []entity.Order
	createErr error
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	m.orders = append(m.orders, *order)
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == id {
			return &m.orders[i], nil
		}
	}
	return nil, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
		}
	}
	return nil
}

type mockLedgerRepo struct {
	postings  []entity.LedgerTransaction
	createErr error
}

func (m *mockLedgerRepo) Create(ctx context.Context, txn *entity.LedgerTransaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	m.postings = append(m.postings, *txn)
	return nil
}

func (m *mockLedgerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.LedgerTransaction, error) {
	for i := range m.postings {
		if m.postings[i].ID == id {
			return &m.postings[i], nil
		}
	}
	return nil, nil
}

func (m *mockLedgerRepo) List(ctx context.Context, params *repository.LedgerFilterParams) ([]entity.LedgerTransaction, int64, error) {
	return m.postings, int64(len(m.postings)), nil
}

func (m *mockLedgerRepo) ListByParty(ctx context.Context, partyType enum.PartyType, partyID uuid.UUID) ([]entity.LedgerTransaction, error) {
	var out []entity.LedgerTransaction
	for _, p := range m.postings {
		switch partyType {
		case enum.PartyTypeCustomer:
			if p.CustomerID != nil && *p.CustomerID == partyID {
				out = append(out, p)
			}
		case enum.PartyTypeSupplier:
			if p.SupplierID != nil && *p.SupplierID == partyID {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type mockCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (m *mockCustomerRepo) add(c *entity.Customer) *entity.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.customers[c.ID] = c
	return c
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	m.add(customer)
	return nil
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, nil
}

func (m *mockCustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	for _, c := range m.customers {
		if c.Phone != nil && *c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	m.customers[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.customers, id)
	return nil
}

func (m *mockCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range m.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type mockVendorRepo struct {
	vendors map[uuid.UUID]*entity.Vendor
}

func newMockVendorRepo() *mockVendorRepo {
	return &mockVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
}

func (m *mockVendorRepo) add(v *entity.Vendor) *entity.Vendor {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	m.vendors[v.ID] = v
	return v
}

func (m *mockVendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	m.add(vendor)
	return nil
}

func (m *mockVendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	if v, ok := m.vendors[id]; ok {
		return v, nil
	}
	return nil, nil
}

func (m *mockVendorRepo) GetBySlug(ctx context.Context, slug string) (*entity.Vendor, error) {
	for _, v := range m.vendors {
		if v.Slug == slug {
			return v, nil
		}
	}
	return nil, nil
}

func (m *mockVendorRepo) UpdateSettings(ctx context.Context, id uuid.UUID, settings entity.VendorSettings) error {
	if v, ok := m.vendors[id]; ok {
		v.Settings = settings
	}
	return nil
}
