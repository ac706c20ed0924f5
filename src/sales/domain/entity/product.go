package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo
// StandardPrice aplica a ventas al contado; DeferredPrice a ventas a crédito
// cuya fecha de pago supera la ventana de gracia (ver domain/service/pricing.go)
type Product struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	StandardPrice decimal.Decimal `json:"standard_price" db:"standard_price"`
	DeferredPrice decimal.Decimal `json:"deferred_price" db:"deferred_price"`
	Stock         int             `json:"stock" db:"stock"`
	Active        bool            `json:"active" db:"active"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// NewProduct crea un nuevo producto validando sus invariantes
// Ambos precios deben ser mayores a cero mientras el producto esté activo
func NewProduct(name string, standardPrice, deferredPrice decimal.Decimal, stock int, createdAt time.Time) (*Product, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if standardPrice.LessThanOrEqual(decimal.Zero) || deferredPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:            uuid.New(),
		Name:          name,
		StandardPrice: standardPrice,
		DeferredPrice: deferredPrice,
		Stock:         stock,
		Active:        true,
		CreatedAt:     createdAt,
	}, nil
}
