package service

import (
	"testing"
	"time"

	"sales/src/sales/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPricingResolver_UnitPrice(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	product := &entity.Product{
		Name:          "Arroz 1kg",
		StandardPrice: decimal.NewFromFloat(10.00),
		DeferredPrice: decimal.NewFromFloat(12.00),
	}

	daysFromNow := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}

	tests := []struct {
		name        string
		saleType    entity.SaleType
		paymentDate *time.Time
		want        decimal.Decimal
	}{
		{
			name:        "venta standard ignora la fecha de pago",
			saleType:    entity.SaleTypeStandard,
			paymentDate: daysFromNow(60),
			want:        product.StandardPrice,
		},
		{
			name:        "venta deferred sin fecha de pago usa precio estándar",
			saleType:    entity.SaleTypeDeferred,
			paymentDate: nil,
			want:        product.StandardPrice,
		},
		{
			name:        "deferred a 5 días queda dentro de la gracia",
			saleType:    entity.SaleTypeDeferred,
			paymentDate: daysFromNow(5),
			want:        product.StandardPrice,
		},
		{
			name:        "deferred exactamente a 10 días queda dentro de la gracia",
			saleType:    entity.SaleTypeDeferred,
			paymentDate: daysFromNow(10),
			want:        product.StandardPrice,
		},
		{
			name:        "deferred a 30 días usa precio diferido",
			saleType:    entity.SaleTypeDeferred,
			paymentDate: daysFromNow(30),
			want:        product.DeferredPrice,
		},
		{
			name:        "deferred con fecha pasada usa precio estándar",
			saleType:    entity.SaleTypeDeferred,
			paymentDate: daysFromNow(-3),
			want:        product.StandardPrice,
		},
		{
			name:        "deferred con fecha del mismo día usa precio estándar",
			saleType:    entity.SaleTypeDeferred,
			paymentDate: &now,
			want:        product.StandardPrice,
		},
	}

	resolver := NewPricingResolver()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.UnitPrice(tt.saleType, tt.paymentDate, now, product)
			assert.True(t, tt.want.Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestPricingResolver_UnitPrice_CeilingBoundary(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	product := &entity.Product{
		Name:          "Café 500g",
		StandardPrice: decimal.NewFromFloat(8.50),
		DeferredPrice: decimal.NewFromFloat(9.75),
	}

	resolver := NewPricingResolver()

	// 10 días y unas horas cuenta como 11 días por el redondeo hacia arriba
	paymentDate := now.AddDate(0, 0, 10).Add(6 * time.Hour)
	got := resolver.UnitPrice(entity.SaleTypeDeferred, &paymentDate, now, product)
	assert.True(t, product.DeferredPrice.Equal(got), "una fracción de día pasada la gracia debe usar precio diferido")

	// 9 días y 23 horas redondea a 10 días y sigue en la gracia
	paymentDate = now.AddDate(0, 0, 9).Add(23 * time.Hour)
	got = resolver.UnitPrice(entity.SaleTypeDeferred, &paymentDate, now, product)
	assert.True(t, product.StandardPrice.Equal(got), "un conteo que redondea a 10 días queda dentro de la gracia")
}
