package service

import (
	"math"
	"time"

	"sales/src/sales/domain/entity"

	"github.com/shopspring/decimal"
)

// DeferredGraceDays es la ventana de gracia: una venta a crédito cuya fecha
// de pago cae dentro de estos días todavía recibe el precio estándar
const DeferredGraceDays = 10

// PricingResolver resuelve el precio unitario de un producto según el tipo
// de venta y la fecha de pago objetivo. Función pura, sin I/O
type PricingResolver struct{}

// NewPricingResolver crea una nueva instancia del resolver
func NewPricingResolver() *PricingResolver {
	return &PricingResolver{}
}

// UnitPrice retorna el precio unitario a aplicar:
//   - venta standard: siempre el precio estándar
//   - venta deferred sin fecha de pago: precio estándar
//   - venta deferred con fecha de pago a <= DeferredGraceDays días: precio estándar
//   - venta deferred con fecha de pago a > DeferredGraceDays días: precio diferido
//
// El conteo de días redondea hacia arriba (ceiling): pagar mañana cuenta como
// 1 día aunque falten pocas horas. Fechas pasadas o del mismo día producen un
// conteo <= 0 y caen en el precio estándar
func (r *PricingResolver) UnitPrice(saleType entity.SaleType, paymentDate *time.Time, now time.Time, product *entity.Product) decimal.Decimal {
	if saleType != entity.SaleTypeDeferred {
		return product.StandardPrice
	}

	if paymentDate == nil {
		return product.StandardPrice
	}

	if daysUntil(*paymentDate, now) <= DeferredGraceDays {
		return product.StandardPrice
	}

	return product.DeferredPrice
}

// daysUntil calcula los días hasta la fecha de pago, redondeando hacia arriba
func daysUntil(paymentDate, now time.Time) int {
	diff := paymentDate.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}
