package handlers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kerudungstore/backend/internal/flash"
	"github.com/kerudungstore/backend/internal/models"
)

// CatalogService is the interface that wraps methods for catalog business logic.
type CatalogService interface {
	// Method ListProducts returns all products plus the aggregate ordered quantity.
	ListProducts(ctx context.Context) (*models.Catalog, error)
	// Method CreateProduct validates the form input and creates a product with an optional image.
	//
	// "imageFile" may be nil when no image was uploaded; "imageFilename" is the client-side name.
	//
	// Missing or malformed fields surface as models.ErrValidation.
	CreateProduct(ctx context.Context, req *models.CreateProductRequest, imageFile io.Reader, imageFilename string) (*models.Product, error)
	// Method DeleteProduct removes a product by id.
	//
	// An unknown id surfaces as models.ErrNotFound.
	DeleteProduct(ctx context.Context, productID int) error
}

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	BaseHandler
	catalogService CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		catalogService: catalogService,
	}
}

// RegisterRoutes registers all catalog handler routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.Get("/", h.Home)
	r.Group(func(r chi.Router) {
		r.Use(adminMiddleware)
		r.Get("/produk/tambah", h.AddProductForm)
		r.Post("/produk/tambah", h.CreateProduct)
		r.Get("/produk/hapus/{id}", h.DeleteProduct)
	})
}

// HomeResponse is the payload of the home view
type HomeResponse struct {
	models.Catalog
	Flash string `json:"flash,omitempty"`
}

// Home handles GET /
// @Summary List products
// @Description List all products together with the aggregate ordered quantity across all orders
// @Tags catalog
// @Produce json
// @Success 200 {object} handlers.HomeResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router / [get]
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		h.Logger.Error("failed to list products", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	message, _ := flash.Pop(w, r)
	h.RespondJSON(w, http.StatusOK, HomeResponse{Catalog: *catalog, Flash: message})
}

// AddProductForm handles GET /produk/tambah
// @Summary Add-product form data
// @Description Supply the pending flash message for the externally rendered add-product form. Admin only.
// @Tags catalog
// @Produce json
// @Success 200 {object} handlers.FormResponse
// @Router /produk/tambah [get]
func (h *CatalogHandler) AddProductForm(w http.ResponseWriter, r *http.Request) {
	message, _ := flash.Pop(w, r)
	h.RespondJSON(w, http.StatusOK, FormResponse{Flash: message})
}

// CreateProduct handles POST /produk/tambah
// @Summary Create a product
// @Description Create a product with name, fabric type, color, price, optional description and optional image upload. Admin only.
// @Tags catalog
// @Accept multipart/form-data
// @Param name formData string true "Product name"
// @Param fabric_type formData string true "Fabric type"
// @Param color formData string true "Color"
// @Param price formData int true "Price (whole-number amount)"
// @Param description formData string false "Description"
// @Param image formData file false "Product image"
// @Success 303 "Redirect to / on success, back to /produk/tambah on validation failure"
// @Router /produk/tambah [post]
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (limit to 20MB). A plain urlencoded post without an
	// image is accepted too.
	if err := r.ParseMultipartForm(20 << 20); err != nil && err != http.ErrNotMultipart {
		h.Logger.Error("failed to parse multipart form", zap.Error(err))
		h.RedirectWithFlash(w, r, "/produk/tambah", "failed to parse product form")
		return
	}

	req := &models.CreateProductRequest{
		Name:        r.FormValue("name"),
		FabricType:  r.FormValue("fabric_type"),
		Color:       r.FormValue("color"),
		Price:       r.FormValue("price"),
		Description: r.FormValue("description"),
	}

	// Extract image file (optional)
	var imageFile multipart.File
	var imageFilename string
	file, fileHeader, err := r.FormFile("image")
	if err == nil && file != nil && fileHeader != nil {
		// Validate file is actually provided (not just empty field)
		if fileHeader.Size > 0 {
			imageFile = file
			imageFilename = fileHeader.Filename
			defer file.Close()
		}
	} else if err != nil && err != http.ErrMissingFile && err != http.ErrNotMultipart {
		h.Logger.Error("failed to get image file from form", zap.Error(err))
		h.RedirectWithFlash(w, r, "/produk/tambah", "failed to process image file")
		return
	}

	var reader io.Reader
	if imageFile != nil {
		reader = imageFile
	}

	if _, err := h.catalogService.CreateProduct(r.Context(), req, reader, imageFilename); err != nil {
		if errors.Is(err, models.ErrValidation) {
			h.RedirectWithFlash(w, r, "/produk/tambah", "all required fields must be filled in")
			return
		}
		h.Logger.Error("failed to create product", zap.Error(err))
		h.RedirectWithFlash(w, r, "/produk/tambah", "failed to create product")
		return
	}

	h.RedirectWithFlash(w, r, "/", "product added")
}

// DeleteProduct handles GET /produk/hapus/{id}
// @Summary Delete a product
// @Description Delete a product by id. Existing orders and the image file are left untouched. Admin only.
// @Tags catalog
// @Param id path int true "Product ID"
// @Success 303 "Redirect to /"
// @Router /produk/hapus/{id} [get]
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RedirectWithFlash(w, r, "/", "product not found")
		return
	}

	if err := h.catalogService.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.RedirectWithFlash(w, r, "/", "product not found")
			return
		}
		h.Logger.Error("failed to delete product", zap.Error(err), zap.Int("id", id))
		h.RedirectWithFlash(w, r, "/", "failed to delete product")
		return
	}

	h.Redirect(w, r, "/")
}
