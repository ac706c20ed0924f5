package usecase

import (
	"context"
	"fmt"

	"sales/src/sales/application/response"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// TopProductsUseCase caso de uso para el ranking de productos más vendidos
type TopProductsUseCase struct {
	db *sqlx.DB
}

// NewTopProductsUseCase crea una nueva instancia del caso de uso
func NewTopProductsUseCase(db *sqlx.DB) *TopProductsUseCase {
	return &TopProductsUseCase{
		db: db,
	}
}

// Execute retorna los productos más vendidos por cantidad
// El nombre sale del item (congelado al vender), no del catálogo actual
func (uc *TopProductsUseCase) Execute(ctx context.Context, limit int) (*response.TopProductsResponse, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT
			product_id,
			product_name,
			SUM(quantity) AS quantity_sold,
			COALESCE(SUM(subtotal), 0) AS revenue
		FROM sale_items
		GROUP BY product_id, product_name
		ORDER BY quantity_sold DESC
		LIMIT $1
	`

	rows, err := uc.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top products: %w", err)
	}
	defer rows.Close()

	resp := &response.TopProductsResponse{}

	for rows.Next() {
		var productID uuid.UUID
		var productName string
		var quantitySold int
		var revenue decimal.Decimal

		if err := rows.Scan(&productID, &productName, &quantitySold, &revenue); err != nil {
			return nil, fmt.Errorf("error scanning top products row: %w", err)
		}

		resp.Products = append(resp.Products, response.TopProductEntry{
			ProductID:    productID,
			ProductName:  productName,
			QuantitySold: quantitySold,
			Revenue:      revenue,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top products rows: %w", err)
	}

	return resp, nil
}
