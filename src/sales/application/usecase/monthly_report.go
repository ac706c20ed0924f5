package usecase

import (
	"context"
	"fmt"
	"time"

	"sales/src/sales/application/response"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// MonthlyReportUseCase caso de uso para el reporte mensual de ventas
// Desglosa los totales por día calendario del mes
type MonthlyReportUseCase struct {
	db *sqlx.DB
}

// NewMonthlyReportUseCase crea una nueva instancia del caso de uso
func NewMonthlyReportUseCase(db *sqlx.DB) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{
		db: db,
	}
}

// Execute genera el reporte para un mes (year, month 1-12)
func (uc *MonthlyReportUseCase) Execute(ctx context.Context, year int, month time.Month) (*response.MonthlyReportResponse, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month: %d", month)
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query := `
		SELECT
			created_at::date AS day,
			COALESCE(SUM(total_amount), 0) AS total,
			COUNT(*) AS sales_count
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY created_at::date
		ORDER BY day
	`

	rows, err := uc.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly report: %w", err)
	}
	defer rows.Close()

	resp := &response.MonthlyReportResponse{
		Month:        from.Format("2006-01"),
		TotalOverall: decimal.Zero,
	}

	for rows.Next() {
		var day time.Time
		var total decimal.Decimal
		var salesCount int

		if err := rows.Scan(&day, &total, &salesCount); err != nil {
			return nil, fmt.Errorf("error scanning monthly report row: %w", err)
		}

		resp.Days = append(resp.Days, response.MonthlyReportDay{
			Date:       day.Format("2006-01-02"),
			Total:      total,
			SalesCount: salesCount,
		})
		resp.TotalOverall = resp.TotalOverall.Add(total)
		resp.SalesCount += salesCount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly report rows: %w", err)
	}

	return resp, nil
}
