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

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sqlx.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sqlx.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db: db,
	}
}

// GetActiveByID busca un producto activo por su ID
func (r *ProductPostgresRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product

	query := `
		SELECT id, name, standard_price, deferred_price, stock, active, created_at
		FROM products
		WHERE id = $1 AND active = TRUE
	`

	if err := r.db.GetContext(ctx, &product, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("error finding product: %w", err)
	}

	return &product, nil
}

// List retorna los productos activos ordenados por nombre
func (r *ProductPostgresRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product

	query := `
		SELECT id, name, standard_price, deferred_price, stock, active, created_at
		FROM products
		WHERE active = TRUE
		ORDER BY name
	`

	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	return products, nil
}

// Create persiste un nuevo producto
func (r *ProductPostgresRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, standard_price, deferred_price, stock, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.StandardPrice,
		product.DeferredPrice,
		product.Stock,
		product.Active,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}

	return nil
}

// Update actualiza nombre, precios y stock de un producto activo
func (r *ProductPostgresRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, standard_price = $3, deferred_price = $4, stock = $5
		WHERE id = $1 AND active = TRUE
	`

	result, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.StandardPrice,
		product.DeferredPrice,
		product.Stock,
	)
	if err != nil {
		return fmt.Errorf("error updating product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if rows == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// Deactivate marca un producto como inactivo (soft delete)
// Las ventas históricas conservan nombre y precio congelados en sale_items
func (r *ProductPostgresRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE products
		SET active = FALSE
		WHERE id = $1 AND active = TRUE
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deactivating product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if rows == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}
