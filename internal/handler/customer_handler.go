package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"brew-pos/internal/model"
	"brew-pos/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CustomerHandler handles customer and member HTTP requests.
type CustomerHandler struct {
	customers service.CustomerService
	auth      service.AuthService
	logger    zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customers service.CustomerService, auth service.AuthService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		auth:      auth,
		logger:    logger.With().Str("handler", "customer").Logger(),
	}
}

// Create handles POST /api/customers requests.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	customer, err := h.customers.CreateCustomer(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// GetByID handles GET /api/customers/{id} requests.
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := parseIDSegment(w, r, "/api/customers/", h.logger)
	if !ok {
		return
	}

	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// Promote handles POST /api/customers/{id}/membership requests.
func (h *CustomerHandler) Promote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/customers/"), "/membership")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer ID format", h.logger)
		return
	}

	var req model.PromoteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.customers.PromoteToMember(r.Context(), id, req.Password, req.DateOfBirth); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListMembers handles GET /api/members requests.
func (h *CustomerHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	members, err := h.customers.ListMembers(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

// Login handles POST /api/members/login requests. A failed login is a 401
// with no detail about which part of the credential was wrong.
func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	identity, err := h.auth.VerifyLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if identity == nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, identity)
}

// parseIDSegment extracts and parses the UUID path segment after prefix.
func parseIDSegment(w http.ResponseWriter, r *http.Request, prefix string, logger zerolog.Logger) (uuid.UUID, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, prefix)
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "ID is required", logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ID format", logger)
		return uuid.Nil, false
	}

	return id, true
}
