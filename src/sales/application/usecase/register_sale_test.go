package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"sales/src/sales/application/request"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
	"sales/src/sales/domain/service"
	"sales/src/sales/infrastructure/notification"
	"sales/src/shared/clock"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks en memoria ---

type productRepoMock struct {
	products map[uuid.UUID]*entity.Product
}

func newProductRepoMock(products ...*entity.Product) *productRepoMock {
	m := &productRepoMock{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *productRepoMock) GetActiveByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := m.products[id]
	if !ok || !product.Active {
		return nil, entity.ErrProductNotFound
	}
	return product, nil
}

func (m *productRepoMock) List(context.Context) ([]*entity.Product, error) { return nil, nil }
func (m *productRepoMock) Create(_ context.Context, p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}
func (m *productRepoMock) Update(context.Context, *entity.Product) error { return nil }
func (m *productRepoMock) Deactivate(context.Context, uuid.UUID) error   { return nil }

type customerRepoMock struct {
	customers map[uuid.UUID]*entity.Customer
}

func newCustomerRepoMock(customers ...*entity.Customer) *customerRepoMock {
	m := &customerRepoMock{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		m.customers[c.ID] = c
	}
	return m
}

func (m *customerRepoMock) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := m.customers[id]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	return customer, nil
}

func (m *customerRepoMock) List(context.Context) ([]*entity.Customer, error) { return nil, nil }
func (m *customerRepoMock) Create(_ context.Context, c *entity.Customer) error {
	m.customers[c.ID] = c
	return nil
}
func (m *customerRepoMock) Update(context.Context, *entity.Customer) error { return nil }
func (m *customerRepoMock) Deactivate(context.Context, uuid.UUID) error    { return nil }

type saleRepoMock struct {
	mu         sync.Mutex
	created    []*entity.Sale
	failCreate bool
}

func (m *saleRepoMock) Create(_ context.Context, sale *entity.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return errors.New("database is down")
	}
	m.created = append(m.created, sale)
	return nil
}

func (m *saleRepoMock) FindByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sale := range m.created {
		if sale.ID == id {
			return sale, nil
		}
	}
	return nil, entity.ErrSaleNotFound
}

func (m *saleRepoMock) List(context.Context, port.SaleFilter) ([]*entity.Sale, error) {
	return nil, nil
}
func (m *saleRepoMock) ListByCustomer(context.Context, uuid.UUID) ([]*entity.Sale, error) {
	return nil, nil
}
func (m *saleRepoMock) MarkPaid(context.Context, uuid.UUID) error { return nil }

func (m *saleRepoMock) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

type notifierMock struct {
	mu       sync.Mutex
	notified []*entity.Sale
	fail     bool
}

func (m *notifierMock) Notify(_ context.Context, sale *entity.Sale, _ *entity.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("gateway unreachable")
	}
	m.notified = append(m.notified, sale)
	return nil
}

func (m *notifierMock) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notified)
}

// --- Fixtures ---

func testProduct(name string, standard, deferred float64) *entity.Product {
	return &entity.Product{
		ID:            uuid.New(),
		Name:          name,
		StandardPrice: decimal.NewFromFloat(standard),
		DeferredPrice: decimal.NewFromFloat(deferred),
		Stock:         100,
		Active:        true,
	}
}

type registerSaleFixture struct {
	uc         *RegisterSaleUseCase
	saleRepo   *saleRepoMock
	notifier   *notifierMock
	dispatcher *notification.Dispatcher
	now        time.Time
}

func newRegisterSaleFixture(products []*entity.Product, customers []*entity.Customer) *registerSaleFixture {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	saleRepo := &saleRepoMock{}
	notifier := &notifierMock{}
	dispatcher := notification.NewDispatcher(notifier, 8)
	dispatcher.Start()

	uc := NewRegisterSaleUseCase(
		newProductRepoMock(products...),
		newCustomerRepoMock(customers...),
		saleRepo,
		service.NewPricingResolver(),
		dispatcher,
		clock.NewFake(now),
	)

	return &registerSaleFixture{
		uc:         uc,
		saleRepo:   saleRepo,
		notifier:   notifier,
		dispatcher: dispatcher,
		now:        now,
	}
}

// --- Tests ---

func TestRegisterSale_StandardCash(t *testing.T) {
	product := testProduct("Arroz 1kg", 10.00, 12.00)
	f := newRegisterSaleFixture([]*entity.Product{product}, nil)
	defer f.dispatcher.Stop()

	resp, err := f.uc.Execute(context.Background(), &request.RegisterSaleRequest{
		SaleType:      "standard",
		PaymentMethod: "cash",
		Items: []request.RegisterSaleItemRequest{
			{ProductID: product.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(30.00).Equal(resp.TotalAmount))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 1, resp.TotalItems)
	require.Len(t, resp.Items, 1)
	assert.True(t, decimal.NewFromFloat(10.00).Equal(resp.Items[0].UnitPrice))

	assert.Equal(t, 1, f.saleRepo.count())
}

func TestRegisterSale_DeferredBeyondGraceUsesDeferredPrice(t *testing.T) {
	product := testProduct("Café 500g", 10.00, 12.00)
	phone := "+549111234567"
	customer, err := entity.NewCustomer("María García", nil, &phone, nil, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f := newRegisterSaleFixture([]*entity.Product{product}, []*entity.Customer{customer})

	paymentDate := f.now.AddDate(0, 0, 30)
	resp, err := f.uc.Execute(context.Background(), &request.RegisterSaleRequest{
		CustomerID:    &customer.ID,
		SaleType:      "deferred",
		PaymentMethod: "cash",
		PaymentDate:   &paymentDate,
		Items: []request.RegisterSaleItemRequest{
			{ProductID: product.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(24.00).Equal(resp.TotalAmount))
	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "María García", *resp.CustomerName)

	// Stop drena la cola: después de esto el aviso ya fue entregado
	f.dispatcher.Stop()
	assert.Equal(t, 1, f.notifier.count())
}

func TestRegisterSale_DeferredWithinGraceUsesStandardPrice(t *testing.T) {
	product := testProduct("Café 500g", 10.00, 12.00)
	f := newRegisterSaleFixture([]*entity.Product{product}, nil)

	paymentDate := f.now.AddDate(0, 0, 5)
	resp, err := f.uc.Execute(context.Background(), &request.RegisterSaleRequest{
		SaleType:      "deferred",
		PaymentMethod: "transfer",
		PaymentDate:   &paymentDate,
		Items: []request.RegisterSaleItemRequest{
			{ProductID: product.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(20.00).Equal(resp.TotalAmount))

	// Venta a crédito sin cliente registrado también genera aviso
	f.dispatcher.Stop()
	assert.Equal(t, 1, f.notifier.count())
}

func TestRegisterSale_UnknownProductRejectsWholeSale(t *testing.T) {
	product := testProduct("Arroz 1kg", 10.00, 12.00)
	f := newRegisterSaleFixture([]*entity.Product{product}, nil)
	defer f.dispatcher.Stop()

	_, err := f.uc.Execute(context.Background(), &request.RegisterSaleRequest{
		SaleType:      "standard",
		PaymentMethod: "cash",
		Items: []request.RegisterSaleItemRequest{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: uuid.New(), Quantity: 1}, // no existe
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrProductNotFound)

	// Todo-o-nada: no quedó ninguna venta persistida
	assert.Equal(t, 0, f.saleRepo.count())
}

func TestRegisterSale_CommitFailureSurfacesError(t *testing.T) {
	product := testProduct("Arroz 1kg", 10.00, 12.00)
	f := newRegisterSaleFixture([]*entity.Product{product}, nil)
	f.saleRepo.failCreate = true

	paymentDate := f.now.AddDate(0, 0, 30)
	_, err := f.uc.Execute(context.Background(), &request.RegisterSaleRequest{
		SaleType:      "deferred",
		PaymentMethod: "cash",
		PaymentDate:   &paymentDate,
		Items: []request.RegisterSaleItemRequest{
			{ProductID: product.ID, Quantity: 1},
		},
	})
	require.Error(t, err)

	// Sin commit no hay aviso
	f.dispatcher.Stop()
	assert.Equal(t, 0, f.notifier.count())
}

func TestRegisterSale_NotifierFailureDoesNotAffectSale(t *testing.T) {
	product := testProduct("Arroz 1kg", 10.00, 12.00)
	f := newRegisterSaleFixture([]*entity.Product{product}, nil)
	f.notifier.fail = true

	paymentDate := f.now.AddDate(0, 0, 30)
	resp, err := f.uc.Execute(context.Background(), &request.RegisterSaleRequest{
		SaleType:      "deferred",
		PaymentMethod: "cash",
		PaymentDate:   &paymentDate,
		Items: []request.RegisterSaleItemRequest{
			{ProductID: product.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 1, f.saleRepo.count())

	f.dispatcher.Stop()
}

func TestRegisterSale_StructuralValidation(t *testing.T) {
	product := testProduct("Arroz 1kg", 10.00, 12.00)

	tests := []struct {
		name    string
		req     *request.RegisterSaleRequest
		wantErr error
	}{
		{
			name: "tipo de venta desconocido",
			req: &request.RegisterSaleRequest{
				SaleType:      "wholesale",
				PaymentMethod: "cash",
				Items:         []request.RegisterSaleItemRequest{{ProductID: product.ID, Quantity: 1}},
			},
			wantErr: entity.ErrInvalidSaleType,
		},
		{
			name: "forma de pago desconocida",
			req: &request.RegisterSaleRequest{
				SaleType:      "standard",
				PaymentMethod: "check",
				Items:         []request.RegisterSaleItemRequest{{ProductID: product.ID, Quantity: 1}},
			},
			wantErr: entity.ErrInvalidPaymentMethod,
		},
		{
			name: "venta sin items",
			req: &request.RegisterSaleRequest{
				SaleType:      "standard",
				PaymentMethod: "cash",
			},
			wantErr: entity.ErrSaleMustHaveItems,
		},
		{
			name: "item sin product_id",
			req: &request.RegisterSaleRequest{
				SaleType:      "standard",
				PaymentMethod: "cash",
				Items:         []request.RegisterSaleItemRequest{{Quantity: 1}},
			},
			wantErr: entity.ErrProductIDRequired,
		},
		{
			name: "item con cantidad cero",
			req: &request.RegisterSaleRequest{
				SaleType:      "standard",
				PaymentMethod: "cash",
				Items:         []request.RegisterSaleItemRequest{{ProductID: product.ID, Quantity: 0}},
			},
			wantErr: entity.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRegisterSaleFixture([]*entity.Product{product}, nil)
			defer f.dispatcher.Stop()

			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			// La validación estructural falla antes de cualquier efecto
			assert.Equal(t, 0, f.saleRepo.count())
		})
	}
}

func TestRegisterSale_MixedItemsPreserveOrderAndPrices(t *testing.T) {
	arroz := testProduct("Arroz 1kg", 10.00, 12.00)
	cafe := testProduct("Café 500g", 8.50, 9.75)
	f := newRegisterSaleFixture([]*entity.Product{arroz, cafe}, nil)
	defer f.dispatcher.Stop()

	paymentDate := f.now.AddDate(0, 0, 30)
	resp, err := f.uc.Execute(context.Background(), &request.RegisterSaleRequest{
		SaleType:      "deferred",
		PaymentMethod: "card",
		PaymentDate:   &paymentDate,
		Items: []request.RegisterSaleItemRequest{
			{ProductID: cafe.ID, Quantity: 2},
			{ProductID: arroz.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Café 500g", resp.Items[0].ProductName)
	assert.Equal(t, "Arroz 1kg", resp.Items[1].ProductName)
	assert.True(t, decimal.NewFromFloat(9.75).Equal(resp.Items[0].UnitPrice))
	assert.True(t, decimal.NewFromFloat(12.00).Equal(resp.Items[1].UnitPrice))

	// 2*9.75 + 1*12.00
	assert.True(t, decimal.NewFromFloat(31.50).Equal(resp.TotalAmount))
}
