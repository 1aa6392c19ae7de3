package integration

import (
	"context"
	"testing"
	"time"

	"brew-pos/internal/database"
	"brew-pos/internal/model"
	"brew-pos/internal/repository"
	"brew-pos/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestEnv wires the full stack against a throwaway PostgreSQL container.
type TestEnv struct {
	Pool *pgxpool.Pool

	Catalog   service.CatalogService
	Customers service.CustomerService
	Auth      service.AuthService
	Orders    service.OrderService
	Reports   service.ReportService
}

// SetupTestEnv creates a PostgreSQL test container, applies the schema, and
// wires repositories and services the same way cmd/api does.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	logger := zerolog.Nop()
	catalogRepo := repository.NewCatalogRepository(pool, logger)
	customerRepo := repository.NewCustomerRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	reportRepo := repository.NewReportRepository(pool, logger)

	return &TestEnv{
		Pool:      pool,
		Catalog:   service.NewCatalogService(catalogRepo, logger),
		Customers: service.NewCustomerService(customerRepo, logger),
		Auth:      service.NewAuthService(customerRepo, logger),
		Orders:    service.NewOrderService(orderRepo, customerRepo, logger),
		Reports:   service.NewReportService(reportRepo, logger),
	}
}

// SeedMenu creates one category with the given products and returns the
// product IDs keyed by name.
func SeedMenu(t *testing.T, env *TestEnv, category string, prices map[string]string) map[string]uuid.UUID {
	t.Helper()

	ctx := context.Background()

	cat, err := env.Catalog.CreateCategory(ctx, category, "")
	if err != nil {
		t.Fatalf("failed to create category %s: %v", category, err)
	}

	ids := make(map[string]uuid.UUID, len(prices))
	for name, price := range prices {
		p, err := env.Catalog.CreateProduct(ctx, name, decimal.RequireFromString(price), cat.ID)
		if err != nil {
			t.Fatalf("failed to create product %s: %v", name, err)
		}
		ids[name] = p.ID
	}

	return ids
}

// SeedCustomer creates a guest customer and returns its ID.
func SeedCustomer(t *testing.T, env *TestEnv, name string) uuid.UUID {
	t.Helper()

	customer, err := env.Customers.CreateCustomer(context.Background(), &model.CreateCustomerRequest{Name: name})
	if err != nil {
		t.Fatalf("failed to create customer %s: %v", name, err)
	}

	return customer.ID
}
