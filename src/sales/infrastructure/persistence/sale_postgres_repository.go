package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
type SalePostgresRepository struct {
	db *sqlx.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sqlx.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db: db,
	}
}

// Create persiste la venta y sus items dentro de una única transacción
// Si falla cualquier insert, el rollback deja la base sin rastro de la venta
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar el encabezado (aggregate root)
	querySale := `
		INSERT INTO sales (
			id, customer_id, sale_type, payment_method,
			total_amount, status, payment_date, notes, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.CustomerID, // NULL permitido (consumidor final)
		sale.SaleType,
		sale.PaymentMethod,
		sale.TotalAmount,
		sale.Status,
		sale.PaymentDate,
		sale.Notes,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating sale: %w", err)
	}

	// 2. Insertar los items preservando su posición original
	queryItem := `
		INSERT INTO sale_items (
			id, sale_id, product_id, product_name,
			quantity, unit_price, subtotal, position
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	for _, item := range sale.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			item.ID,
			item.SaleID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
			item.Position,
		)
		if err != nil {
			return fmt.Errorf("error creating sale item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing sale: %w", err)
	}

	return nil
}

// FindByID retorna la venta con sus items en el orden original
func (r *SalePostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale

	query := `
		SELECT id, customer_id, sale_type, payment_method,
		       total_amount, status, payment_date, notes, created_at
		FROM sales
		WHERE id = $1
	`

	if err := r.db.GetContext(ctx, &sale, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrSaleNotFound
		}
		return nil, fmt.Errorf("error finding sale: %w", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	return &sale, nil
}

// List retorna las ventas que cumplen el filtro, más recientes primero
func (r *SalePostgresRepository) List(ctx context.Context, filter port.SaleFilter) ([]*entity.Sale, error) {
	var conditions []string
	var args []interface{}

	if filter.SaleType != "" {
		args = append(args, filter.SaleType)
		conditions = append(conditions, fmt.Sprintf("sale_type = $%d", len(args)))
	}
	if filter.PaymentMethod != "" {
		args = append(args, filter.PaymentMethod)
		conditions = append(conditions, fmt.Sprintf("payment_method = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Day != nil {
		day := time.Date(filter.Day.Year(), filter.Day.Month(), filter.Day.Day(), 0, 0, 0, 0, filter.Day.Location())
		args = append(args, day)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
		args = append(args, day.AddDate(0, 0, 1))
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}

	query := `
		SELECT id, customer_id, sale_type, payment_method,
		       total_amount, status, payment_date, notes, created_at
		FROM sales
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return r.querySales(ctx, query, args...)
}

// ListByCustomer retorna el historial de compras de un cliente
func (r *SalePostgresRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Sale, error) {
	query := `
		SELECT id, customer_id, sale_type, payment_method,
		       total_amount, status, payment_date, notes, created_at
		FROM sales
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	return r.querySales(ctx, query, customerID)
}

// MarkPaid transiciona la venta de pending a paid
// El UPDATE condicional garantiza que la transición ocurra una única vez
func (r *SalePostgresRepository) MarkPaid(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE sales
		SET status = 'paid'
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error updating sale status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Distinguir venta inexistente de venta ya cobrada
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM sales WHERE id = $1)", id); err != nil {
		return fmt.Errorf("error checking sale existence: %w", err)
	}
	if !exists {
		return entity.ErrSaleNotFound
	}

	return entity.ErrSaleAlreadyPaid
}

// querySales ejecuta una consulta de ventas y carga los items de cada una
func (r *SalePostgresRepository) querySales(ctx context.Context, query string, args ...interface{}) ([]*entity.Sale, error) {
	var sales []*entity.Sale

	if err := r.db.SelectContext(ctx, &sales, query, args...); err != nil {
		return nil, fmt.Errorf("error listing sales: %w", err)
	}

	for _, sale := range sales {
		items, err := r.loadItems(ctx, sale.ID)
		if err != nil {
			return nil, err
		}
		sale.Items = items
	}

	return sales, nil
}

// loadItems retorna los items de una venta en su posición original
func (r *SalePostgresRepository) loadItems(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error) {
	var items []entity.SaleItem

	query := `
		SELECT id, sale_id, product_id, product_name,
		       quantity, unit_price, subtotal, position
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY position
	`

	if err := r.db.SelectContext(ctx, &items, query, saleID); err != nil {
		return nil, fmt.Errorf("error loading sale items: %w", err)
	}

	return items, nil
}
