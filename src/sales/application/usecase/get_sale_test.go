package usecase

import (
	"context"
	"testing"
	"time"

	"sales/src/sales/application/request"
	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSale_ReadBackKeepsFrozenPricesAfterCatalogChange(t *testing.T) {
	arroz := testProduct("Arroz 1kg", 10.00, 12.00)
	cafe := testProduct("Café 500g", 8.50, 9.75)
	f := newRegisterSaleFixture([]*entity.Product{arroz, cafe}, nil)
	defer f.dispatcher.Stop()

	registered, err := f.uc.Execute(context.Background(), &request.RegisterSaleRequest{
		SaleType:      "standard",
		PaymentMethod: "cash",
		Items: []request.RegisterSaleItemRequest{
			{ProductID: cafe.ID, Quantity: 2},
			{ProductID: arroz.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	// Cambiar precios y nombre en el catálogo después del commit
	arroz.Name = "Arroz premium 1kg"
	arroz.StandardPrice = decimal.NewFromFloat(99.99)
	cafe.StandardPrice = decimal.NewFromFloat(99.99)
	cafe.DeferredPrice = decimal.NewFromFloat(99.99)

	getUC := NewGetSaleUseCase(f.saleRepo, newCustomerRepoMock())
	resp, err := getUC.Execute(context.Background(), registered.SaleID)
	require.NoError(t, err)

	// La lectura devuelve lo congelado al vender: orden, cantidades,
	// nombres y precios unitarios originales
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Café 500g", resp.Items[0].ProductName)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.True(t, decimal.NewFromFloat(8.50).Equal(resp.Items[0].UnitPrice))
	assert.Equal(t, "Arroz 1kg", resp.Items[1].ProductName)
	assert.Equal(t, 3, resp.Items[1].Quantity)
	assert.True(t, decimal.NewFromFloat(10.00).Equal(resp.Items[1].UnitPrice))

	assert.True(t, registered.TotalAmount.Equal(resp.TotalAmount))
}

func TestGetSale_NotFound(t *testing.T) {
	getUC := NewGetSaleUseCase(&saleRepoMock{}, newCustomerRepoMock())

	_, err := getUC.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrSaleNotFound)
}

func TestGetSale_IncludesCustomerContact(t *testing.T) {
	product := testProduct("Arroz 1kg", 10.00, 12.00)
	phone := "+549111234567"
	customer, err := entity.NewCustomer("María García", nil, &phone, nil, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f := newRegisterSaleFixture([]*entity.Product{product}, []*entity.Customer{customer})
	defer f.dispatcher.Stop()

	registered, err := f.uc.Execute(context.Background(), &request.RegisterSaleRequest{
		CustomerID:    &customer.ID,
		SaleType:      "standard",
		PaymentMethod: "card",
		Items: []request.RegisterSaleItemRequest{
			{ProductID: product.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	getUC := NewGetSaleUseCase(f.saleRepo, newCustomerRepoMock(customer))
	resp, err := getUC.Execute(context.Background(), registered.SaleID)
	require.NoError(t, err)

	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "María García", *resp.CustomerName)
	require.NotNil(t, resp.CustomerPhone)
	assert.Equal(t, "+549111234567", *resp.CustomerPhone)
}
