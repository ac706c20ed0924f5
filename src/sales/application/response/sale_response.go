package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemResponse representa un item en la respuesta de una venta
type SaleItemResponse struct {
	ItemID      uuid.UUID       `json:"item_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse respuesta de una venta registrada con sus items
type SaleResponse struct {
	SaleID        uuid.UUID          `json:"sale_id"`
	CustomerID    *uuid.UUID         `json:"customer_id,omitempty"`
	CustomerName  *string            `json:"customer_name,omitempty"`
	CustomerPhone *string            `json:"customer_phone,omitempty"`
	SaleType      string             `json:"sale_type"`
	PaymentMethod string             `json:"payment_method"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Status        string             `json:"status"`
	PaymentDate   *time.Time         `json:"payment_date,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	TotalItems    int                `json:"total_items"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleListItem representa una venta en el listado (sin detalle de items)
type SaleListItem struct {
	SaleID        uuid.UUID       `json:"sale_id"`
	CustomerID    *uuid.UUID      `json:"customer_id,omitempty"`
	SaleType      string          `json:"sale_type"`
	PaymentMethod string          `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	TotalItems    int             `json:"total_items"`
	CreatedAt     time.Time       `json:"created_at"`
}
