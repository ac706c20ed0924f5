package port

import (
	"context"
	"time"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
)

// SaleFilter contiene los filtros opcionales del listado de ventas
// Un campo en su valor cero significa "sin filtrar"
type SaleFilter struct {
	SaleType      entity.SaleType
	PaymentMethod entity.PaymentMethod
	Status        entity.SaleStatus
	Day           *time.Time // día calendario de la venta
}

// SaleRepository define el contrato de persistencia de ventas
type SaleRepository interface {
	// Create persiste la venta y todos sus items como una unidad atómica:
	// o se escriben el encabezado y los N items, o no se escribe nada
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retorna la venta con sus items en el orden original
	// Retorna entity.ErrSaleNotFound si no existe
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// List retorna las ventas que cumplen el filtro, más recientes primero
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)

	// ListByCustomer retorna el historial de compras de un cliente
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Sale, error)

	// MarkPaid transiciona la venta de pending a paid, una única vez
	// Retorna entity.ErrSaleNotFound si no existe,
	// entity.ErrSaleAlreadyPaid si ya fue cobrada
	MarkPaid(ctx context.Context, id uuid.UUID) error
}
