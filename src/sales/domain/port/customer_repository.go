package port

import (
	"context"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
)

// CustomerRepository define el contrato de persistencia de clientes
type CustomerRepository interface {
	// GetByID busca un cliente activo por su ID
	// Retorna entity.ErrCustomerNotFound si no existe o está inactivo
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// List retorna los clientes activos ordenados por nombre
	List(ctx context.Context) ([]*entity.Customer, error)

	// Create persiste un nuevo cliente
	Create(ctx context.Context, customer *entity.Customer) error

	// Update actualiza los datos de contacto de un cliente activo
	Update(ctx context.Context, customer *entity.Customer) error

	// Deactivate marca un cliente como inactivo (soft delete)
	Deactivate(ctx context.Context, id uuid.UUID) error
}
