package request

import (
	"time"

	"github.com/google/uuid"
)

// RegisterSaleItemRequest representa un item solicitado dentro de una venta
type RegisterSaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// RegisterSaleRequest request para registrar una venta
// CustomerID es opcional (NULL = consumidor final); PaymentDate solo tiene
// sentido en ventas a crédito y determina el precio unitario aplicado
type RegisterSaleRequest struct {
	CustomerID    *uuid.UUID                `json:"customer_id"`
	SaleType      string                    `json:"sale_type" binding:"required"`
	PaymentMethod string                    `json:"payment_method" binding:"required"`
	Items         []RegisterSaleItemRequest `json:"items" binding:"required"`
	PaymentDate   *time.Time                `json:"payment_date"`
	Notes         *string                   `json:"notes"`
}
