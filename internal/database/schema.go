package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the canonical relational layout. Monetary columns are DECIMAL
// with two fraction digits; line amounts and totals are written once at order
// creation and never recomputed.
const Schema = `
	CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		category_id UUID NOT NULL REFERENCES categories(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		customer_type TEXT NOT NULL DEFAULT 'GUEST' CHECK (customer_type IN ('GUEST', 'MEMBER')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS members (
		customer_id UUID PRIMARY KEY REFERENCES customers(id),
		password_hash TEXT NOT NULL,
		date_of_birth DATE,
		registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES customers(id),
		placed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		status TEXT NOT NULL DEFAULT 'PLACED',
		payment_method TEXT NOT NULL DEFAULT '',
		total_amount DECIMAL(12,2) NOT NULL CHECK (total_amount >= 0)
	);

	CREATE TABLE IF NOT EXISTS order_lines (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id),
		product_id UUID NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_price DECIMAL(10,2) NOT NULL CHECK (unit_price >= 0),
		line_amount DECIMAL(12,2) NOT NULL CHECK (line_amount >= 0)
	);

	CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id);
	CREATE INDEX IF NOT EXISTS idx_orders_placed_at ON orders(placed_at);
	CREATE INDEX IF NOT EXISTS idx_order_lines_order_id ON order_lines(order_id);
`

// Migrate applies the schema to the database. Safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
