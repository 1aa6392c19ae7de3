package handler

import (
	"net/http"
	"time"

	"brew-pos/internal/service"

	"github.com/rs/zerolog"
)

// ReportHandler handles reporting HTTP requests.
type ReportHandler struct {
	service service.ReportService
	logger  zerolog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With().Str("handler", "report").Logger(),
	}
}

// Sales handles GET /api/reports/sales requests, with optional startDate and
// endDate query parameters (YYYY-MM-DD, inclusive).
func (h *ReportHandler) Sales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	start, ok := parseDateParam(w, r, "startDate", h.logger)
	if !ok {
		return
	}
	end, ok := parseDateParam(w, r, "endDate", h.logger)
	if !ok {
		return
	}

	report, err := h.service.SalesByDay(r.Context(), start, end)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Products handles GET /api/reports/products requests.
func (h *ReportHandler) Products(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	report, err := h.service.SalesByProduct(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Customers handles GET /api/reports/customers requests.
func (h *ReportHandler) Customers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	report, err := h.service.SalesByCustomer(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// parseDateParam parses an optional YYYY-MM-DD query parameter.
func parseDateParam(w http.ResponseWriter, r *http.Request, name string, logger zerolog.Logger) (*time.Time, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, true
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name+" format, expected YYYY-MM-DD", logger)
		return nil, false
	}

	return &t, true
}
