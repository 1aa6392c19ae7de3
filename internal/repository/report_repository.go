package repository

import (
	"context"
	"fmt"
	"time"

	"brew-pos/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reportRepository implements the ReportRepository interface using PostgreSQL.
type reportRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReportRepository creates a new PostgreSQL-backed report repository.
func NewReportRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReportRepository {
	return &reportRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "report").Logger(),
	}
}

// SalesByDay aggregates orders by the calendar date they were placed.
func (r *reportRepository) SalesByDay(ctx context.Context, start, end *time.Time) ([]model.DailySales, error) {
	query := `
		SELECT
			o.placed_at::date AS order_date,
			COUNT(o.id),
			COALESCE(SUM(o.total_amount), 0),
			COALESCE(AVG(o.total_amount), 0)
		FROM orders o
	`
	var args []any
	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(" WHERE o.placed_at::date >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		if start != nil {
			query += fmt.Sprintf(" AND o.placed_at::date <= $%d", len(args))
		} else {
			query += fmt.Sprintf(" WHERE o.placed_at::date <= $%d", len(args))
		}
	}
	query += " GROUP BY order_date ORDER BY order_date DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query daily sales")
		return nil, fmt.Errorf("failed to query daily sales: %w", err)
	}
	defer rows.Close()

	var report []model.DailySales
	for rows.Next() {
		var row model.DailySales
		err := rows.Scan(&row.Date, &row.OrderCount, &row.TotalSales, &row.AvgOrderValue)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan daily sales row")
			return nil, fmt.Errorf("failed to scan daily sales: %w", err)
		}
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating daily sales rows")
		return nil, fmt.Errorf("error iterating daily sales: %w", err)
	}

	return report, nil
}

// SalesByProduct aggregates order lines by product. Inner joins keep the
// report to products that actually sold.
func (r *reportRepository) SalesByProduct(ctx context.Context) ([]model.ProductSales, error) {
	query := `
		SELECT
			p.name,
			c.name,
			SUM(ol.quantity),
			SUM(ol.line_amount),
			COUNT(DISTINCT ol.order_id)
		FROM order_lines ol
		JOIN products p ON ol.product_id = p.id
		JOIN categories c ON p.category_id = c.id
		GROUP BY p.id, p.name, c.name
		ORDER BY SUM(ol.line_amount) DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query product sales")
		return nil, fmt.Errorf("failed to query product sales: %w", err)
	}
	defer rows.Close()

	var report []model.ProductSales
	for rows.Next() {
		var row model.ProductSales
		err := rows.Scan(&row.ProductName, &row.CategoryName, &row.TotalQuantity,
			&row.TotalRevenue, &row.DistinctOrderCount)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product sales row")
			return nil, fmt.Errorf("failed to scan product sales: %w", err)
		}
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product sales rows")
		return nil, fmt.Errorf("error iterating product sales: %w", err)
	}

	return report, nil
}

// SalesByCustomer aggregates orders by customer. The left join keeps
// customers with no orders in the report with zeroed aggregates.
func (r *reportRepository) SalesByCustomer(ctx context.Context) ([]model.CustomerSales, error) {
	query := `
		SELECT
			c.name,
			c.customer_type,
			COUNT(o.id),
			COALESCE(SUM(o.total_amount), 0),
			COALESCE(AVG(o.total_amount), 0),
			MAX(o.placed_at)
		FROM customers c
		LEFT JOIN orders o ON c.id = o.customer_id
		GROUP BY c.id, c.name, c.customer_type
		ORDER BY COALESCE(SUM(o.total_amount), 0) DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query customer sales")
		return nil, fmt.Errorf("failed to query customer sales: %w", err)
	}
	defer rows.Close()

	var report []model.CustomerSales
	for rows.Next() {
		var row model.CustomerSales
		err := rows.Scan(&row.CustomerName, &row.CustomerType, &row.OrderCount,
			&row.TotalSpent, &row.AvgOrderValue, &row.LastOrderDate)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan customer sales row")
			return nil, fmt.Errorf("failed to scan customer sales: %w", err)
		}
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating customer sales rows")
		return nil, fmt.Errorf("error iterating customer sales: %w", err)
	}

	return report, nil
}
