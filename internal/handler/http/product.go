package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/glowmart/catalog-service/internal/service"
	"github.com/glowmart/catalog-service/pkg/httputil"
	"github.com/glowmart/catalog-service/pkg/validator"
)

// ProductHandler handles HTTP requests for catalog endpoints.
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// CreateProductRequest is the JSON request body for creating a product.
type CreateProductRequest struct {
	Name     string           `json:"name" validate:"required,min=1,max=500"`
	Category string           `json:"category" validate:"required"`
	Gender   string           `json:"gender" validate:"required"`
	Price    decimal.Decimal  `json:"price"`
	OldPrice *decimal.Decimal `json:"old_price"`
	Sale     bool             `json:"sale"`
}

// UpdateProductRequest is the JSON request body for updating a product. All
// fields are optional.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=500"`
	Category *string          `json:"category" validate:"omitempty,min=1"`
	Gender   *string          `json:"gender" validate:"omitempty,min=1"`
	Price    *decimal.Decimal `json:"price"`
	OldPrice *decimal.Decimal `json:"old_price"`
	Sale     *bool            `json:"sale"`
}

// --- Handlers ---

// ListProducts handles GET /api/v1/products.
//
// Query parameters: page, limit, search, gender, category, color, size,
// stock, sort. Malformed values fall back to defaults; the response is the
// page object itself, not wrapped in an envelope, for compatibility with
// storefront clients.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := service.NormalizeListingQuery(r.URL.Query())

	page, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, page)
}

// GetProduct handles GET /api/v1/products/{id}.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	detail, err := h.service.GetProductDetail(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: detail})
}

// CreateProduct handles POST /api/v1/products.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &service.CreateProductInput{
		Name:     req.Name,
		Category: req.Category,
		Gender:   req.Gender,
		Price:    req.Price,
		OldPrice: req.OldPrice,
		Sale:     req.Sale,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	detail, err := h.service.GetProductDetail(r.Context(), product.ID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: detail})
}

// UpdateProduct handles PUT /api/v1/products/{id}.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, &service.UpdateProductInput{
		Name:     req.Name,
		Category: req.Category,
		Gender:   req.Gender,
		Price:    req.Price,
		OldPrice: req.OldPrice,
		Sale:     req.Sale,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	detail, err := h.service.GetProductDetail(r.Context(), product.ID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: detail})
}

// DeleteProduct handles DELETE /api/v1/products/{id}.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
