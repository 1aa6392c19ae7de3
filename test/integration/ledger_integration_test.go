package integration

import (
	"context"
	"testing"
	"time"

	"brew-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLedger_PriceSnapshot(t *testing.T) {
	env := SetupTestEnv(t)
	ctx := context.Background()

	menu := SeedMenu(t, env, "Coffee", map[string]string{"Latte": "30.00"})
	customerID := SeedCustomer(t, env, "Alice")

	order, err := env.Orders.CreateOrder(ctx, &model.CreateOrderRequest{
		CustomerID:    customerID,
		PaymentMethod: "CASH",
		Lines:         []model.OrderLineRequest{{ProductID: menu["Latte"], Quantity: 2}},
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("60.00").Equal(order.TotalAmount))

	// Reprice the product after the sale. The ledger must keep the price it
	// saw at order time.
	_, err = env.Pool.Exec(ctx, `UPDATE products SET price = $1 WHERE id = $2`,
		decimal.RequireFromString("50.00"), menu["Latte"])
	require.NoError(t, err)

	lines, err := env.Orders.GetOrderDetails(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, decimal.RequireFromString("30.00").Equal(lines[0].UnitPrice))
	assert.True(t, decimal.RequireFromString("60.00").Equal(lines[0].LineAmount))

	history, err := env.Orders.GetOrderHistory(ctx, &customerID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, decimal.RequireFromString("60.00").Equal(history[0].TotalAmount))
}

func TestOrderLedger_AtomicCreate(t *testing.T) {
	env := SetupTestEnv(t)
	ctx := context.Background()

	menu := SeedMenu(t, env, "Coffee", map[string]string{"Espresso": "25.00"})
	customerID := SeedCustomer(t, env, "Bob")

	_, err := env.Orders.CreateOrder(ctx, &model.CreateOrderRequest{
		CustomerID:    customerID,
		PaymentMethod: "CARD",
		Lines: []model.OrderLineRequest{
			{ProductID: menu["Espresso"], Quantity: 1},
			{ProductID: uuid.New(), Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	// The valid line must not have been written either.
	var orders, orderLines int
	require.NoError(t, env.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&orders))
	require.NoError(t, env.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_lines`).Scan(&orderLines))
	assert.Equal(t, 0, orders)
	assert.Equal(t, 0, orderLines)
}

func TestOrderLedger_StatusLifecycle(t *testing.T) {
	env := SetupTestEnv(t)
	ctx := context.Background()

	menu := SeedMenu(t, env, "Tea", map[string]string{"Green Tea": "28.00"})
	customerID := SeedCustomer(t, env, "Carol")

	order, err := env.Orders.CreateOrder(ctx, &model.CreateOrderRequest{
		CustomerID:    customerID,
		PaymentMethod: "CASH",
		Lines:         []model.OrderLineRequest{{ProductID: menu["Green Tea"], Quantity: 1}},
	})
	require.NoError(t, err)

	history, err := env.Orders.GetOrderHistory(ctx, &customerID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, model.OrderStatusPlaced, history[0].Status)

	require.NoError(t, env.Orders.UpdateStatus(ctx, order.ID, "completed"))

	history, err = env.Orders.GetOrderHistory(ctx, &customerID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, history[0].Status)

	err = env.Orders.UpdateStatus(ctx, uuid.New(), model.OrderStatusCancelled)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestReports_SalesByCustomerIncludesQuietCustomers(t *testing.T) {
	env := SetupTestEnv(t)
	ctx := context.Background()

	menu := SeedMenu(t, env, "Coffee", map[string]string{"Latte": "32.00"})
	buyerID := SeedCustomer(t, env, "Buyer")
	SeedCustomer(t, env, "Window Shopper")

	_, err := env.Orders.CreateOrder(ctx, &model.CreateOrderRequest{
		CustomerID:    buyerID,
		PaymentMethod: "CARD",
		Lines:         []model.OrderLineRequest{{ProductID: menu["Latte"], Quantity: 3}},
	})
	require.NoError(t, err)

	rows, err := env.Reports.SalesByCustomer(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by total spent, so the buyer comes first.
	assert.Equal(t, "Buyer", rows[0].CustomerName)
	assert.Equal(t, 1, rows[0].OrderCount)
	assert.True(t, decimal.RequireFromString("96.00").Equal(rows[0].TotalSpent))
	require.NotNil(t, rows[0].LastOrderDate)

	assert.Equal(t, "Window Shopper", rows[1].CustomerName)
	assert.Equal(t, 0, rows[1].OrderCount)
	assert.True(t, rows[1].TotalSpent.IsZero())
	assert.Nil(t, rows[1].LastOrderDate)
}

func TestReports_SalesByDay(t *testing.T) {
	env := SetupTestEnv(t)
	ctx := context.Background()

	menu := SeedMenu(t, env, "Coffee", map[string]string{"Latte": "30.00", "Espresso": "20.00"})
	customerID := SeedCustomer(t, env, "Dora")

	for _, name := range []string{"Latte", "Espresso"} {
		_, err := env.Orders.CreateOrder(ctx, &model.CreateOrderRequest{
			CustomerID:    customerID,
			PaymentMethod: "CASH",
			Lines:         []model.OrderLineRequest{{ProductID: menu[name], Quantity: 1}},
		})
		require.NoError(t, err)
	}

	t.Run("today has both orders", func(t *testing.T) {
		rows, err := env.Reports.SalesByDay(ctx, nil, nil)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 2, rows[0].OrderCount)
		assert.True(t, decimal.RequireFromString("50.00").Equal(rows[0].TotalSales))
		assert.True(t, decimal.RequireFromString("25.00").Equal(rows[0].AvgOrderValue))
	})

	t.Run("a range with no orders is empty", func(t *testing.T) {
		start := time.Now().AddDate(0, 0, -30)
		end := time.Now().AddDate(0, 0, -20)

		rows, err := env.Reports.SalesByDay(ctx, &start, &end)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestReports_SalesByProduct(t *testing.T) {
	env := SetupTestEnv(t)
	ctx := context.Background()

	menu := SeedMenu(t, env, "Coffee", map[string]string{"Latte": "30.00", "Unsold": "99.00"})
	customerID := SeedCustomer(t, env, "Eve")

	for i := 0; i < 2; i++ {
		_, err := env.Orders.CreateOrder(ctx, &model.CreateOrderRequest{
			CustomerID:    customerID,
			PaymentMethod: "CARD",
			Lines:         []model.OrderLineRequest{{ProductID: menu["Latte"], Quantity: 2}},
		})
		require.NoError(t, err)
	}

	rows, err := env.Reports.SalesByProduct(ctx)
	require.NoError(t, err)

	// Unsold products do not appear.
	require.Len(t, rows, 1)
	assert.Equal(t, "Latte", rows[0].ProductName)
	assert.Equal(t, "Coffee", rows[0].CategoryName)
	assert.Equal(t, 4, rows[0].TotalQuantity)
	assert.Equal(t, 2, rows[0].DistinctOrderCount)
	assert.True(t, decimal.RequireFromString("120.00").Equal(rows[0].TotalRevenue))
}

func TestMembership_PromoteAndLogin(t *testing.T) {
	env := SetupTestEnv(t)
	ctx := context.Background()

	customer, err := env.Customers.CreateCustomer(ctx, &model.CreateCustomerRequest{
		Name:  "Frank",
		Email: "frank@example.com",
	})
	require.NoError(t, err)

	dob := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.Customers.PromoteToMember(ctx, customer.ID, "123456", &dob))

	promoted, err := env.Customers.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CustomerTypeMember, promoted.Type)

	t.Run("correct credentials", func(t *testing.T) {
		identity, err := env.Auth.VerifyLogin(ctx, "frank@example.com", "123456")

		require.NoError(t, err)
		require.NotNil(t, identity)
		assert.Equal(t, customer.ID, identity.CustomerID)
		assert.Equal(t, "Frank", identity.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		identity, err := env.Auth.VerifyLogin(ctx, "frank@example.com", "654321")

		require.NoError(t, err)
		assert.Nil(t, identity)
	})

	t.Run("second promotion conflicts", func(t *testing.T) {
		err := env.Customers.PromoteToMember(ctx, customer.ID, "another-password", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrAlreadyMember)
	})

	t.Run("guest cannot log in", func(t *testing.T) {
		_, err := env.Customers.CreateCustomer(ctx, &model.CreateCustomerRequest{
			Name:  "Grace",
			Email: "grace@example.com",
		})
		require.NoError(t, err)

		identity, err := env.Auth.VerifyLogin(ctx, "grace@example.com", "123456")

		require.NoError(t, err)
		assert.Nil(t, identity)
	})
}

func TestMembership_PromoteUnknownCustomerTouchesNothing(t *testing.T) {
	env := SetupTestEnv(t)
	ctx := context.Background()

	err := env.Customers.PromoteToMember(ctx, uuid.New(), "123456", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCustomerNotFound)

	var members int
	require.NoError(t, env.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM members`).Scan(&members))
	assert.Equal(t, 0, members)
}
