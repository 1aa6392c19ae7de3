package service

import (
	"context"
	"fmt"
	"time"

	"brew-pos/internal/model"
	"brew-pos/internal/repository"

	"github.com/rs/zerolog"
)

// reportService implements ReportService. Reports are thin pass-throughs over
// the aggregate queries; the only logic here is rounding averages back to two
// fraction digits, since SQL AVG over DECIMAL produces more.
type reportService struct {
	reportRepo repository.ReportRepository
	logger     zerolog.Logger
}

// NewReportService creates a new report service.
func NewReportService(reportRepo repository.ReportRepository, logger zerolog.Logger) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		logger:     logger.With().Str("service", "report").Logger(),
	}
}

// SalesByDay reports order counts and totals per calendar date.
func (s *reportService) SalesByDay(ctx context.Context, start, end *time.Time) ([]model.DailySales, error) {
	report, err := s.reportRepo.SalesByDay(ctx, start, end)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute daily sales report")
		return nil, fmt.Errorf("failed to compute daily sales report: %w", err)
	}

	for i := range report {
		report[i].AvgOrderValue = report[i].AvgOrderValue.Round(2)
	}

	return report, nil
}

// SalesByProduct reports quantity and revenue per sold product.
func (s *reportService) SalesByProduct(ctx context.Context) ([]model.ProductSales, error) {
	report, err := s.reportRepo.SalesByProduct(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute product sales report")
		return nil, fmt.Errorf("failed to compute product sales report: %w", err)
	}
	return report, nil
}

// SalesByCustomer reports spend per customer.
func (s *reportService) SalesByCustomer(ctx context.Context) ([]model.CustomerSales, error) {
	report, err := s.reportRepo.SalesByCustomer(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute customer sales report")
		return nil, fmt.Errorf("failed to compute customer sales report: %w", err)
	}

	for i := range report {
		report[i].AvgOrderValue = report[i].AvgOrderValue.Round(2)
	}

	return report, nil
}
