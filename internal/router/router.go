package router

import (
	"net/http"
	"strings"

	"brew-pos/internal/handler"
	"brew-pos/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	customerHandler *handler.CustomerHandler,
	orderHandler *handler.OrderHandler,
	reportHandler *handler.ReportHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/products", catalogHandler.ListProducts)
	mux.HandleFunc("/api/categories", catalogHandler.ListCategories)

	// Customer handler function
	customerRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/customers" || r.URL.Path == "/api/customers/" {
			customerHandler.Create(w, r)
			return
		}

		if strings.HasSuffix(r.URL.Path, "/membership") {
			customerHandler.Promote(w, r)
			return
		}

		customerHandler.GetByID(w, r)
	}

	mux.HandleFunc("/api/customers", customerRouteHandler)
	mux.HandleFunc("/api/customers/", customerRouteHandler)

	mux.HandleFunc("/api/members", customerHandler.ListMembers)
	mux.HandleFunc("/api/members/login", customerHandler.Login)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/" {
			switch r.Method {
			case http.MethodPost:
				orderHandler.Create(w, r)
			case http.MethodGet:
				orderHandler.History(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		if strings.HasSuffix(r.URL.Path, "/details") {
			orderHandler.Details(w, r)
			return
		}

		if strings.HasSuffix(r.URL.Path, "/status") {
			orderHandler.UpdateStatus(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	mux.HandleFunc("/api/reports/sales", reportHandler.Sales)
	mux.HandleFunc("/api/reports/products", reportHandler.Products)
	mux.HandleFunc("/api/reports/customers", reportHandler.Customers)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
