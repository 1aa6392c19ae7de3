package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses seen in practice. The ledger accepts any status token;
// these are the ones the demo data and the UI use.
const (
	OrderStatusPlaced    = "PLACED"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Order represents the order header. TotalAmount is derived from the lines
// at creation time and is never supplied by a caller.
type Order struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	CustomerID    uuid.UUID       `json:"customerId" db:"customer_id"`
	PlacedAt      time.Time       `json:"placedAt" db:"placed_at"`
	Status        string          `json:"status" db:"status"`
	PaymentMethod string          `json:"paymentMethod" db:"payment_method"`
	TotalAmount   decimal.Decimal `json:"totalAmount" db:"total_amount"`
}

// OrderLine represents a line item. UnitPrice is a snapshot of the catalogue
// price at order time; LineAmount = UnitPrice * Quantity, computed once.
type OrderLine struct {
	ID         uuid.UUID       `json:"-" db:"id"`
	OrderID    uuid.UUID       `json:"-" db:"order_id"`
	ProductID  uuid.UUID       `json:"productId" db:"product_id"`
	Quantity   int             `json:"quantity" db:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice" db:"unit_price"`
	LineAmount decimal.Decimal `json:"lineAmount" db:"line_amount"`
}

// OrderSummary is an order joined with the customer name, as shown in the
// order history.
type OrderSummary struct {
	ID            uuid.UUID       `json:"id"`
	CustomerName  string          `json:"customerName"`
	PlacedAt      time.Time       `json:"placedAt"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// OrderLineDetail is an order line joined with the product name.
type OrderLineDetail struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineAmount  decimal.Decimal `json:"lineAmount"`
}

// CreateOrderRequest represents the request payload for creating an order.
type CreateOrderRequest struct {
	CustomerID    uuid.UUID          `json:"customerId"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status,omitempty"`
	Lines         []OrderLineRequest `json:"lines"`
}

// OrderLineRequest represents a single line in an order request.
type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// OrderResponse represents the response payload for a created order.
type OrderResponse struct {
	ID          uuid.UUID       `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Lines       []OrderLine     `json:"lines"`
}

// UpdateStatusRequest represents the request payload for an order status update.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
