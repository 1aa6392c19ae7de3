package repository

import (
	"context"
	"time"

	"brew-pos/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CatalogRepository defines the interface for product and category data access.
type CatalogRepository interface {
	// ListActiveProducts retrieves active products joined with their category
	// name, ordered by category name then product name.
	ListActiveProducts(ctx context.Context) ([]model.ProductListing, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// PriceOf retrieves the current catalogue price of a product, active or
	// not. Returns model.ErrProductNotFound if the product does not exist.
	PriceOf(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)

	// CreateCategory inserts a new category. Returns
	// model.ErrCategoryNameTaken if the name is already used.
	CreateCategory(ctx context.Context, category *model.Category) error

	// CreateProduct inserts a new product.
	CreateProduct(ctx context.Context, product *model.Product) error
}

// CustomerRepository defines the interface for customer and member data access.
type CustomerRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new customer.
	Create(ctx context.Context, customer *model.Customer) error

	// GetByID retrieves a customer by its ID. Returns (nil, nil) if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)

	// SetType updates a customer's type within the provided transaction.
	// Returns model.ErrCustomerNotFound if no row was updated.
	SetType(ctx context.Context, tx pgx.Tx, id uuid.UUID, customerType string) error

	// CreateMember inserts a member record within the provided transaction.
	// Returns model.ErrAlreadyMember if the customer already has one.
	CreateMember(ctx context.Context, tx pgx.Tx, member *model.Member) error

	// ListMembers retrieves member customers joined with their member record,
	// ordered by registration time descending.
	ListMembers(ctx context.Context) ([]model.MemberProfile, error)

	// GetMemberByEmail retrieves the login account for a MEMBER customer with
	// the given email. Returns (nil, nil) if there is no such member.
	GetMemberByEmail(ctx context.Context, email string) (*model.MemberAccount, error)
}

// OrderRepository defines the interface for order ledger data access.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// SnapshotPrices reads the current unit price of each product within the
	// provided transaction. Products that do not exist are simply absent from
	// the returned map.
	SnapshotPrices(ctx context.Context, tx pgx.Tx, productIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderLines inserts order lines within the provided transaction.
	CreateOrderLines(ctx context.Context, tx pgx.Tx, lines []model.OrderLine) error

	// UpdateStatus updates the status of a single order. Returns
	// model.ErrOrderNotFound if the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// ListOrders retrieves orders joined with the customer name, newest
	// first, optionally filtered to one customer.
	ListOrders(ctx context.Context, customerID *uuid.UUID) ([]model.OrderSummary, error)

	// ListOrderLines retrieves the lines of one order joined with the product
	// name. An unknown order yields an empty slice, not an error.
	ListOrderLines(ctx context.Context, orderID uuid.UUID) ([]model.OrderLineDetail, error)
}

// ReportRepository defines the interface for the derived reporting views.
// Reports are recomputed from the ledger on every call; they never write.
type ReportRepository interface {
	// SalesByDay aggregates orders by calendar date, optionally bounded by an
	// inclusive date range, newest date first.
	SalesByDay(ctx context.Context, start, end *time.Time) ([]model.DailySales, error)

	// SalesByProduct aggregates order lines by product, highest revenue first.
	SalesByProduct(ctx context.Context) ([]model.ProductSales, error)

	// SalesByCustomer aggregates orders by customer, including customers with
	// no orders, highest spend first.
	SalesByCustomer(ctx context.Context) ([]model.CustomerSales, error)
}
