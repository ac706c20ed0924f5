package port

import (
	"context"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository define el contrato de persistencia del catálogo
type ProductRepository interface {
	// GetActiveByID busca un producto activo por su ID
	// Retorna entity.ErrProductNotFound si no existe o está inactivo
	GetActiveByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retorna los productos activos ordenados por nombre
	List(ctx context.Context) ([]*entity.Product, error)

	// Create persiste un nuevo producto
	Create(ctx context.Context, product *entity.Product) error

	// Update actualiza nombre, precios y stock de un producto activo
	Update(ctx context.Context, product *entity.Product) error

	// Deactivate marca un producto como inactivo (soft delete)
	Deactivate(ctx context.Context, id uuid.UUID) error
}
