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
)

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// CreateCustomer creates a new customer. Absent optional fields are stored as
// empty strings; the type defaults to GUEST.
func (s *customerService) CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, model.ErrNameRequired
	}

	customerType := strings.ToUpper(strings.TrimSpace(req.Type))
	if customerType == "" {
		customerType = model.CustomerTypeGuest
	}

	customer := &model.Customer{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Type:      customerType,
		CreatedAt: time.Now(),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error().Err(err).Msg("failed to create customer")
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info().
		Str("customer_id", customer.ID.String()).
		Str("type", customer.Type).
		Msg("customer created successfully")

	return customer, nil
}

// GetCustomer retrieves a customer by ID.
func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to get customer")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	return customer, nil
}

// PromoteToMember sets the customer's type to MEMBER and inserts the member
// record in a single transaction. A missing customer leaves both tables
// untouched.
func (s *customerService) PromoteToMember(ctx context.Context, id uuid.UUID, password string, dateOfBirth *time.Time) error {
	if password == "" {
		return model.ErrPasswordRequired
	}

	tx, err := s.customerRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to promote customer: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.customerRepo.SetType(ctx, tx, id, model.CustomerTypeMember); err != nil {
		if model.IsNotFound(err) {
			s.logger.Warn().Str("customer_id", id.String()).Msg("promotion rejected, customer not found")
			return err
		}
		s.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to set customer type")
		return fmt.Errorf("failed to promote customer: %w", err)
	}

	member := &model.Member{
		CustomerID:   id,
		PasswordHash: HashPassword(password),
		DateOfBirth:  dateOfBirth,
		RegisteredAt: time.Now(),
	}

	if err = s.customerRepo.CreateMember(ctx, tx, member); err != nil {
		if model.IsConflict(err) {
			s.logger.Warn().Str("customer_id", id.String()).Msg("promotion rejected, already a member")
			return err
		}
		s.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to create member")
		return fmt.Errorf("failed to promote customer: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to commit transaction")
		return fmt.Errorf("failed to promote customer: %w", err)
	}

	s.logger.Info().
		Str("customer_id", id.String()).
		Msg("customer promoted to member")

	return nil
}

// ListMembers retrieves all members, most recently registered first.
func (s *customerService) ListMembers(ctx context.Context) ([]model.MemberProfile, error) {
	members, err := s.customerRepo.ListMembers(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list members")
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}
