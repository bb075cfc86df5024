package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glowmart/catalog-service/internal/domain"
	"github.com/glowmart/catalog-service/internal/service"
	"github.com/glowmart/catalog-service/pkg/httputil"
	"github.com/glowmart/catalog-service/pkg/validator"
)

// RelationHandler handles HTTP requests for a product's attached images,
// colors, and sizes.
type RelationHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewRelationHandler creates a new relation HTTP handler.
func NewRelationHandler(svc *service.CatalogService, logger *slog.Logger) *RelationHandler {
	return &RelationHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// ImageRequest is the JSON request body for creating or updating an image.
type ImageRequest struct {
	Filename string `json:"filename" validate:"required,max=500"`
	URL      string `json:"url" validate:"required,url"`
	Category string `json:"category" validate:"required,oneof=UserImage ProductImage"`
}

// ColorRequest is the JSON request body for creating or updating a color
// variant.
type ColorRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Hex   string `json:"hex" validate:"required,hexcolor"`
	Stock int    `json:"stock" validate:"gte=0"`
}

// SizeRequest is the JSON request body for creating or updating a size
// variant.
type SizeRequest struct {
	Label string `json:"size" validate:"required,max=20"`
	Stock int    `json:"stock" validate:"gte=0"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return false
	}
	if err := validator.Validate(dst); err != nil {
		httputil.WriteValidationError(w, err)
		return false
	}
	return true
}

// --- Image handlers ---

// ListImages handles GET /api/v1/products/{id}/images.
func (h *RelationHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	images, err := h.service.ImagesForProduct(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: images})
}

// AddImage handles POST /api/v1/products/{id}/images.
func (h *RelationHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req ImageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	img := &domain.Image{
		Filename:  req.Filename,
		URL:       req.URL,
		Category:  req.Category,
		ProductID: &productID,
	}

	if err := h.service.AddImage(r.Context(), img); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: img})
}

// UpdateImage handles PUT /api/v1/products/images/{id}.
func (h *RelationHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req struct {
		ImageRequest
		ProductID *int64 `json:"product_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	img := &domain.Image{
		ID:        id,
		Filename:  req.Filename,
		URL:       req.URL,
		Category:  req.Category,
		ProductID: req.ProductID,
	}

	if err := h.service.UpdateImage(r.Context(), img); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: img})
}

// DeleteImage handles DELETE /api/v1/products/images/{id}.
func (h *RelationHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteImage(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Color handlers ---

// ListColors handles GET /api/v1/products/{id}/colors.
func (h *RelationHandler) ListColors(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	colors, err := h.service.ColorsForProduct(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: colors})
}

// AddColor handles POST /api/v1/products/{id}/colors.
func (h *RelationHandler) AddColor(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req ColorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c := &domain.Color{
		ProductID: productID,
		Name:      req.Name,
		Hex:       req.Hex,
		Stock:     req.Stock,
	}

	if err := h.service.AddColor(r.Context(), c); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: c})
}

// UpdateColor handles PUT /api/v1/products/colors/{id}.
func (h *RelationHandler) UpdateColor(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req ColorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c := &domain.Color{
		ID:    id,
		Name:  req.Name,
		Hex:   req.Hex,
		Stock: req.Stock,
	}

	if err := h.service.UpdateColor(r.Context(), c); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: c})
}

// DeleteColor handles DELETE /api/v1/products/colors/{id}.
func (h *RelationHandler) DeleteColor(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteColor(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Size handlers ---

// ListSizes handles GET /api/v1/products/{id}/sizes.
func (h *RelationHandler) ListSizes(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	sizes, err := h.service.SizesForProduct(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sizes})
}

// AddSize handles POST /api/v1/products/{id}/sizes.
func (h *RelationHandler) AddSize(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req SizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s := &domain.Size{
		ProductID: productID,
		Label:     req.Label,
		Stock:     req.Stock,
	}

	if err := h.service.AddSize(r.Context(), s); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: s})
}

// UpdateSize handles PUT /api/v1/products/sizes/{id}.
func (h *RelationHandler) UpdateSize(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req SizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s := &domain.Size{
		ID:    id,
		Label: req.Label,
		Stock: req.Stock,
	}

	if err := h.service.UpdateSize(r.Context(), s); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: s})
}

// DeleteSize handles DELETE /api/v1/products/sizes/{id}.
func (h *RelationHandler) DeleteSize(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.DeleteSize(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
