package service

import (
	"context"
	"time"

	"brew-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogService defines operations for the product catalogue.
type CatalogService interface {
	// ListActiveProducts retrieves the active menu, grouped by category.
	ListActiveProducts(ctx context.Context) ([]model.ProductListing, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// PriceOf retrieves the current price of a product, active or not.
	PriceOf(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)

	// CreateCategory creates a new category.
	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)

	// CreateProduct creates a new product in the given category.
	CreateProduct(ctx context.Context, name string, price decimal.Decimal, categoryID uuid.UUID) (*model.Product, error)
}

// CustomerService defines operations for customer management.
type CustomerService interface {
	// CreateCustomer creates a new customer.
	CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)

	// GetCustomer retrieves a customer by ID.
	GetCustomer(ctx context.Context, id uuid.UUID) (*model.Customer, error)

	// PromoteToMember promotes a customer to a member, setting the type and
	// creating the member record in one transaction.
	PromoteToMember(ctx context.Context, id uuid.UUID, password string, dateOfBirth *time.Time) error

	// ListMembers retrieves all members, most recently registered first.
	ListMembers(ctx context.Context) ([]model.MemberProfile, error)
}

// AuthService defines the member credential check.
type AuthService interface {
	// VerifyLogin checks a member's email and password. A nil identity with a
	// nil error means the credentials did not match anything; which part was
	// wrong is deliberately not revealed.
	VerifyLogin(ctx context.Context, email, password string) (*model.MemberIdentity, error)
}

// OrderService defines operations for the order ledger.
type OrderService interface {
	// CreateOrder creates a new order with its lines as one atomic unit,
	// snapshotting unit prices from the catalogue.
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderResponse, error)

	// UpdateStatus updates the status of an existing order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// GetOrderHistory retrieves orders, newest first, optionally filtered to
	// one customer.
	GetOrderHistory(ctx context.Context, customerID *uuid.UUID) ([]model.OrderSummary, error)

	// GetOrderDetails retrieves the lines of one order.
	GetOrderDetails(ctx context.Context, orderID uuid.UUID) ([]model.OrderLineDetail, error)
}

// ReportService defines the read-only aggregate views over the ledger.
type ReportService interface {
	// SalesByDay reports order counts and totals per calendar date.
	SalesByDay(ctx context.Context, start, end *time.Time) ([]model.DailySales, error)

	// SalesByProduct reports quantity and revenue per sold product.
	SalesByProduct(ctx context.Context) ([]model.ProductSales, error)

	// SalesByCustomer reports spend per customer, including customers with no
	// orders.
	SalesByCustomer(ctx context.Context) ([]model.CustomerSales, error)
}
