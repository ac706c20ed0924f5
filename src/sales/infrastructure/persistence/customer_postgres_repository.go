package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CustomerPostgresRepository implementa CustomerRepository usando PostgreSQL
type CustomerPostgresRepository struct {
	db *sqlx.DB
}

// NewCustomerPostgresRepository crea una nueva instancia del repositorio
func NewCustomerPostgresRepository(db *sqlx.DB) port.CustomerRepository {
	return &CustomerPostgresRepository{
		db: db,
	}
}

// GetByID busca un cliente activo por su ID
func (r *CustomerPostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer

	query := `
		SELECT id, name, document, phone, address, active, created_at
		FROM customers
		WHERE id = $1 AND active = TRUE
	`

	if err := r.db.GetContext(ctx, &customer, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("error finding customer: %w", err)
	}

	return &customer, nil
}

// List retorna los clientes activos ordenados por nombre
func (r *CustomerPostgresRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	var customers []*entity.Customer

	query := `
		SELECT id, name, document, phone, address, active, created_at
		FROM customers
		WHERE active = TRUE
		ORDER BY name
	`

	if err := r.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}

	return customers, nil
}

// Create persiste un nuevo cliente
func (r *CustomerPostgresRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, document, phone, address, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Document,
		customer.Phone,
		customer.Address,
		customer.Active,
		customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating customer: %w", err)
	}

	return nil
}

// Update actualiza los datos de contacto de un cliente activo
func (r *CustomerPostgresRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, document = $3, phone = $4, address = $5
		WHERE id = $1 AND active = TRUE
	`

	result, err := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Document,
		customer.Phone,
		customer.Address,
	)
	if err != nil {
		return fmt.Errorf("error updating customer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if rows == 0 {
		return entity.ErrCustomerNotFound
	}

	return nil
}

// Deactivate marca un cliente como inactivo (soft delete)
// Sus ventas históricas no se ven afectadas
func (r *CustomerPostgresRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE customers
		SET active = FALSE
		WHERE id = $1 AND active = TRUE
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deactivating customer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if rows == 0 {
		return entity.ErrCustomerNotFound
	}

	return nil
}
