package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem representa un item dentro de una venta (entity del aggregate)
// El precio unitario queda congelado al momento de la venta: cambios
// posteriores en el catálogo no afectan ventas históricas
type SaleItem struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	SaleID      uuid.UUID       `json:"sale_id" db:"sale_id"`
	ProductID   uuid.UUID       `json:"product_id" db:"product_id"`
	ProductName string          `json:"product_name" db:"product_name"`
	Quantity    int             `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" db:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal" db:"subtotal"`
	Position    int             `json:"-" db:"position"`
}

// NewSaleItem crea un item de venta calculando el subtotal
func NewSaleItem(productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) (*SaleItem, error) {
	if productID == uuid.Nil {
		return nil, ErrProductIDRequired
	}
	if productName == "" {
		return nil, ErrProductNameRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	return &SaleItem{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    subtotal,
	}, nil
}
