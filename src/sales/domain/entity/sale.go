package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleType indica si la venta se liquida al contado o a crédito
type SaleType string

const (
	SaleTypeStandard SaleType = "standard"
	SaleTypeDeferred SaleType = "deferred"
)

// IsValid verifica que el tipo de venta sea conocido
func (t SaleType) IsValid() bool {
	return t == SaleTypeStandard || t == SaleTypeDeferred
}

// PaymentMethod representa la forma de pago de una venta
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// IsValid verifica que la forma de pago sea conocida
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCash || m == PaymentMethodCard || m == PaymentMethodTransfer
}

// SaleStatus representa el estado de cobro de una venta
type SaleStatus string

const (
	SaleStatusPending SaleStatus = "pending"
	SaleStatusPaid    SaleStatus = "paid"
)

// Sale representa una venta registrada (Aggregate Root)
// Inmutable salvo Status, que transiciona pending -> paid una única vez
type Sale struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	CustomerID    *uuid.UUID      `json:"customer_id,omitempty" db:"customer_id"` // NULL = consumidor final
	SaleType      SaleType        `json:"sale_type" db:"sale_type"`
	PaymentMethod PaymentMethod   `json:"payment_method" db:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status        SaleStatus      `json:"status" db:"status"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty" db:"payment_date"`
	Notes         *string         `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	Items         []SaleItem      `json:"items"`
}

// NewSale crea una venta con sus items validados
// El total es la suma exacta de subtotales en el orden de los items
func NewSale(
	customerID *uuid.UUID,
	saleType SaleType,
	paymentMethod PaymentMethod,
	paymentDate *time.Time,
	notes *string,
	items []SaleItem,
	createdAt time.Time,
) (*Sale, error) {
	if !saleType.IsValid() {
		return nil, ErrInvalidSaleType
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if len(items) == 0 {
		return nil, ErrSaleMustHaveItems
	}

	totalAmount := decimal.Zero
	for _, item := range items {
		totalAmount = totalAmount.Add(item.Subtotal)
	}

	saleID := uuid.New()

	// Asignar sale_id y posición a todos los items
	for i := range items {
		items[i].SaleID = saleID
		items[i].Position = i
	}

	return &Sale{
		ID:            saleID,
		CustomerID:    customerID,
		SaleType:      saleType,
		PaymentMethod: paymentMethod,
		TotalAmount:   totalAmount,
		Status:        SaleStatusPending,
		PaymentDate:   paymentDate,
		Notes:         notes,
		CreatedAt:     createdAt,
		Items:         items,
	}, nil
}

// TotalItems retorna el número total de items
func (s *Sale) TotalItems() int {
	return len(s.Items)
}

// IsDeferred indica si la venta es a crédito
func (s *Sale) IsDeferred() bool {
	return s.SaleType == SaleTypeDeferred
}
