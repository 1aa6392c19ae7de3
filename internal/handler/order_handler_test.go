package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"brew-pos/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.OrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderService) GetOrderHistory(ctx context.Context, customerID *uuid.UUID) ([]model.OrderSummary, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderSummary), args.Error(1)
}

func (m *MockOrderService) GetOrderDetails(ctx context.Context, orderID uuid.UUID) ([]model.OrderLineDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderLineDetail), args.Error(1)
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	testResponse := &model.OrderResponse{
		ID:          orderID,
		TotalAmount: decimal.RequireFromString("65.00"),
		Lines: []model.OrderLine{
			{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New(), Quantity: 1,
				UnitPrice: decimal.RequireFromString("65.00"), LineAmount: decimal.RequireFromString("65.00")},
		},
	}

	tests := []struct {
		name           string
		method         string
		requestBody    interface{}
		mockReturn     *model.OrderResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:   "Success",
			method: http.MethodPost,
			requestBody: &model.CreateOrderRequest{
				CustomerID:    uuid.New(),
				PaymentMethod: "card",
				Lines:         []model.OrderLineRequest{{ProductID: uuid.New(), Quantity: 1}},
			},
			mockReturn:     testResponse,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:   "Empty order",
			method: http.MethodPost,
			requestBody: &model.CreateOrderRequest{
				CustomerID:    uuid.New(),
				PaymentMethod: "card",
			},
			mockError:      model.ErrEmptyOrder,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:   "Unknown product",
			method: http.MethodPost,
			requestBody: &model.CreateOrderRequest{
				CustomerID:    uuid.New(),
				PaymentMethod: "card",
				Lines:         []model.OrderLineRequest{{ProductID: uuid.New(), Quantity: 1}},
			},
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:   "Storage failure",
			method: http.MethodPost,
			requestBody: &model.CreateOrderRequest{
				CustomerID:    uuid.New(),
				PaymentMethod: "card",
				Lines:         []model.OrderLineRequest{{ProductID: uuid.New(), Quantity: 1}},
			},
			mockError:      errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			requestBody:    nil,
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			h := NewOrderHandler(mockService, logger)

			if tt.expectService {
				mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.CreateOrderRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else if tt.requestBody != nil {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(tt.method, "/api/orders", &body)
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if !tt.expectService {
				mockService.AssertNotCalled(t, "CreateOrder")
			}
		})
	}
}

func TestOrderHandler_Details(t *testing.T) {
	logger := zerolog.Nop()
	orderID := uuid.New()

	t.Run("returns lines", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		lines := []model.OrderLineDetail{
			{ProductID: uuid.New(), ProductName: "Latte", Quantity: 2,
				UnitPrice:  decimal.RequireFromString("32.00"),
				LineAmount: decimal.RequireFromString("64.00")},
		}
		mockService.On("GetOrderDetails", mock.Anything, orderID).Return(lines, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID.String()+"/details", nil)
		rec := httptest.NewRecorder()

		h.Details(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []model.OrderLineDetail
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "Latte", got[0].ProductName)
	})

	t.Run("unknown order yields empty array", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		mockService.On("GetOrderDetails", mock.Anything, orderID).Return([]model.OrderLineDetail(nil), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID.String()+"/details", nil)
		rec := httptest.NewRecorder()

		h.Details(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("invalid order id", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/not-a-uuid/details", nil)
		rec := httptest.NewRecorder()

		h.Details(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()
	orderID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		mockService.On("UpdateStatus", mock.Anything, orderID, "COMPLETED").Return(nil)

		body := bytes.NewBufferString(`{"status": "COMPLETED"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/orders/"+orderID.String()+"/status", body)
		rec := httptest.NewRecorder()

		h.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("order not found", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		mockService.On("UpdateStatus", mock.Anything, orderID, "COMPLETED").Return(model.ErrOrderNotFound)

		body := bytes.NewBufferString(`{"status": "COMPLETED"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/orders/"+orderID.String()+"/status", body)
		rec := httptest.NewRecorder()

		h.UpdateStatus(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderHandler_History(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("all orders", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		mockService.On("GetOrderHistory", mock.Anything, (*uuid.UUID)(nil)).
			Return([]model.OrderSummary{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rec := httptest.NewRecorder()

		h.History(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("filtered by customer", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		customerID := uuid.New()
		mockService.On("GetOrderHistory", mock.Anything, &customerID).
			Return([]model.OrderSummary{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders?customerId="+customerID.String(), nil)
		rec := httptest.NewRecorder()

		h.History(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid customer id", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/orders?customerId=nope", nil)
		rec := httptest.NewRecorder()

		h.History(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetOrderHistory")
	})
}
