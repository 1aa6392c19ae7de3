// Command seed fills the database with demo catalogue, customers and a month
// of randomized order history, then prints summary statistics.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"brew-pos/internal/config"
	"brew-pos/internal/database"
	"brew-pos/internal/model"
	"brew-pos/internal/repository"
	"brew-pos/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	catalogRepo := repository.NewCatalogRepository(pool, logger)
	customerRepo := repository.NewCustomerRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	reportRepo := repository.NewReportRepository(pool, logger)

	catalogService := service.NewCatalogService(catalogRepo, logger)
	customerService := service.NewCustomerService(customerRepo, logger)
	orderService := service.NewOrderService(orderRepo, customerRepo, logger)
	reportService := service.NewReportService(reportRepo, logger)

	fmt.Println("Seeding catalogue...")

	categories := []struct {
		name        string
		description string
		products    []struct {
			name  string
			price string
		}
	}{
		{"Coffee", "Espresso-based drinks", []struct{ name, price string }{
			{"Americano", "25.00"}, {"Latte", "32.00"}, {"Cappuccino", "30.00"}, {"Mocha", "35.00"},
		}},
		{"Tea", "Tea-based drinks", []struct{ name, price string }{
			{"Matcha Latte", "28.00"}, {"Milk Tea", "22.00"},
		}},
		{"Desserts", "Cakes and small bites", []struct{ name, price string }{
			{"Cheesecake", "38.00"}, {"Tiramisu", "42.00"},
		}},
		{"Light Meals", "Sandwiches and salads", []struct{ name, price string }{
			{"Ham Sandwich", "28.00"}, {"Caesar Salad", "32.00"},
		}},
	}

	var productIDs []uuid.UUID
	for _, c := range categories {
		category, err := catalogService.CreateCategory(ctx, c.name, c.description)
		if err != nil {
			if model.IsConflict(err) {
				fmt.Printf("  category %q already exists, skipping\n", c.name)
				continue
			}
			return fmt.Errorf("failed to seed category %q: %w", c.name, err)
		}
		for _, p := range c.products {
			price, err := decimal.NewFromString(p.price)
			if err != nil {
				return fmt.Errorf("bad seed price %q: %w", p.price, err)
			}
			product, err := catalogService.CreateProduct(ctx, p.name, price, category.ID)
			if err != nil {
				return fmt.Errorf("failed to seed product %q: %w", p.name, err)
			}
			productIDs = append(productIDs, product.ID)
		}
	}

	fmt.Println("Seeding customers...")

	seedCustomers := []model.CreateCustomerRequest{
		{Name: "Alice Wong", Phone: "13912345678", Email: "alice@example.com", Address: "1 Garden Rd"},
		{Name: "Ben Carter", Phone: "13823456789", Email: "ben@example.com", Address: "100 Nanjing Rd"},
		{Name: "Chloe Park", Phone: "13734567890", Email: "chloe@example.com", Address: "8 Riverside Ave"},
		{Name: "Daniel Reyes", Phone: "13645678901", Email: "daniel@example.com", Address: "42 Tech Park"},
		{Name: "Emma Liu", Phone: "13556789012", Email: "emma@example.com", Address: "3 Lakeside Blvd"},
		{Name: "Felix Zhang", Phone: "13467890123", Email: "felix@example.com", Address: "77 High St"},
	}

	var customerIDs []uuid.UUID
	for i, req := range seedCustomers {
		customer, err := customerService.CreateCustomer(ctx, &req)
		if err != nil {
			return fmt.Errorf("failed to seed customer %q: %w", req.Name, err)
		}
		customerIDs = append(customerIDs, customer.ID)

		// Every third customer becomes a member.
		if i%3 == 1 {
			dob := time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)
			if err := customerService.PromoteToMember(ctx, customer.ID, "123456", &dob); err != nil {
				return fmt.Errorf("failed to promote customer %q: %w", req.Name, err)
			}
		}
	}

	fmt.Println("Generating order history...")

	paymentMethods := []string{"cash", "card", "alipay", "wechat"}

	for i := 0; i < 50; i++ {
		lineCount := 1 + rand.Intn(4)
		seen := make(map[uuid.UUID]bool)
		var lines []model.OrderLineRequest
		for len(lines) < lineCount {
			productID := productIDs[rand.Intn(len(productIDs))]
			if seen[productID] {
				break
			}
			seen[productID] = true
			lines = append(lines, model.OrderLineRequest{
				ProductID: productID,
				Quantity:  1 + rand.Intn(3),
			})
		}

		order, err := orderService.CreateOrder(ctx, &model.CreateOrderRequest{
			CustomerID:    customerIDs[rand.Intn(len(customerIDs))],
			PaymentMethod: paymentMethods[rand.Intn(len(paymentMethods))],
			Lines:         lines,
		})
		if err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}

		// Spread orders over the past 30 days. Backdating is a seed-tool
		// concern; the ledger itself always stamps creation time.
		placedAt := time.Now().AddDate(0, 0, -rand.Intn(30))
		if err := backdateOrder(ctx, pool, order.ID, placedAt); err != nil {
			return fmt.Errorf("failed to backdate order: %w", err)
		}
	}

	fmt.Println("Demo data generated.")

	report, err := reportService.SalesByDay(ctx, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to compute summary: %w", err)
	}

	totalSales := decimal.Zero
	totalOrders := 0
	for _, day := range report {
		totalSales = totalSales.Add(day.TotalSales)
		totalOrders += day.OrderCount
	}

	fmt.Printf("Total sales:  %s\n", totalSales.StringFixed(2))
	fmt.Printf("Total orders: %d\n", totalOrders)

	topProducts, err := reportService.SalesByProduct(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute product summary: %w", err)
	}
	if len(topProducts) > 0 {
		fmt.Printf("Top product:  %s (%s revenue)\n",
			topProducts[0].ProductName, topProducts[0].TotalRevenue.StringFixed(2))
	}

	return nil
}

func backdateOrder(ctx context.Context, pool *pgxpool.Pool, orderID uuid.UUID, placedAt time.Time) error {
	_, err := pool.Exec(ctx, "UPDATE orders SET placed_at = $2 WHERE id = $1", orderID, placedAt)
	return err
}
