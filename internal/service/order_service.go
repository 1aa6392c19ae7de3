package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brew-pos/internal/model"
	"brew-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder creates a new order with its lines as one atomic unit. Unit
// prices are snapshotted from the catalogue inside the same transaction that
// writes the order, so the stored total always equals the sum of the stored
// line amounts, whatever happens to catalogue prices afterwards.
func (s *orderService) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderResponse, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	if customer == nil {
		s.logger.Warn().
			Str("customer_id", req.CustomerID.String()).
			Msg("order rejected, customer not found")
		return nil, model.ErrCustomerNotFound
	}

	// Start transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	productIDs := make([]uuid.UUID, len(req.Lines))
	for i, line := range req.Lines {
		productIDs[i] = line.ProductID
	}

	prices, err := s.orderRepo.SnapshotPrices(ctx, tx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to snapshot prices")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order := &model.Order{
		ID:            uuid.New(),
		CustomerID:    req.CustomerID,
		PlacedAt:      time.Now(),
		Status:        normalizeStatus(req.Status),
		PaymentMethod: strings.ToUpper(req.PaymentMethod),
	}

	lines := make([]model.OrderLine, len(req.Lines))
	total := decimal.Zero
	for i, line := range req.Lines {
		unitPrice, ok := prices[line.ProductID]
		if !ok {
			s.logger.Warn().
				Str("product_id", line.ProductID.String()).
				Msg("order rejected, product not found")
			err = model.ErrProductNotFound
			return nil, err
		}

		lineAmount := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		lines[i] = model.OrderLine{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  unitPrice,
			LineAmount: lineAmount,
		}
		total = total.Add(lineAmount)
	}
	order.TotalAmount = total

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateOrderLines(ctx, tx, lines); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("line_count", len(lines)).
			Msg("failed to create order lines")
		return nil, fmt.Errorf("failed to create order lines: %w", err)
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("customer_id", order.CustomerID.String()).
		Int("line_count", len(lines)).
		Str("total_amount", order.TotalAmount.StringFixed(2)).
		Msg("order created successfully")

	return &model.OrderResponse{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		Lines:       lines,
	}, nil
}

// UpdateStatus updates the status of an existing order. Any status token is
// accepted; transition rules are the caller's concern.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if strings.TrimSpace(status) == "" {
		return model.NewDomainError(model.KindValidation, model.ErrCodeInvalidJSON, "Status is required")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, strings.ToUpper(status)); err != nil {
		if model.IsNotFound(err) {
			return err
		}
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}

// GetOrderHistory retrieves orders joined with the customer name.
func (s *orderService) GetOrderHistory(ctx context.Context, customerID *uuid.UUID) ([]model.OrderSummary, error) {
	orders, err := s.orderRepo.ListOrders(ctx, customerID)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get order history")
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}
	return orders, nil
}

// GetOrderDetails retrieves the lines of one order. An unknown order yields
// an empty slice; callers check the parent order separately if they care.
func (s *orderService) GetOrderDetails(ctx context.Context, orderID uuid.UUID) ([]model.OrderLineDetail, error) {
	lines, err := s.orderRepo.ListOrderLines(ctx, orderID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to get order details")
		return nil, fmt.Errorf("failed to get order details: %w", err)
	}
	return lines, nil
}

// validateOrderRequest validates the order request.
func (s *orderService) validateOrderRequest(req *model.CreateOrderRequest) error {
	if req == nil {
		return fmt.Errorf("order request is nil")
	}

	if len(req.Lines) == 0 {
		return model.ErrEmptyOrder
	}

	for i, line := range req.Lines {
		if line.ProductID == uuid.Nil {
			return model.NewDomainError(model.KindValidation, model.ErrCodeProductNotFound,
				fmt.Sprintf("Line %d: product ID is required", i))
		}

		if line.Quantity <= 0 {
			s.logger.Warn().
				Int("line_index", i).
				Str("product_id", line.ProductID.String()).
				Int("quantity", line.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}

// normalizeStatus upper-cases the requested status, defaulting to PLACED.
func normalizeStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return model.OrderStatusPlaced
	}
	return strings.ToUpper(status)
}
