package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kerudungstore/backend/internal/flash"
	"github.com/kerudungstore/backend/internal/models"
)

// OrderService is the interface that wraps methods for ordering business logic.
type OrderService interface {
	// Method GetProduct resolves the product an order form is shown for.
	//
	// An unknown id surfaces as models.ErrNotFound.
	GetProduct(ctx context.Context, productID int) (*models.Product, error)
	// Method PlaceOrder validates the form input and creates an order against an existing product.
	//
	// An unknown product surfaces as models.ErrNotFound, bad input as models.ErrValidation.
	PlaceOrder(ctx context.Context, productID int, req *models.PlaceOrderRequest) (*models.Order, error)
	// Method ListOrders returns all orders with their products.
	ListOrders(ctx context.Context) ([]models.OrderWithProduct, error)
}

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	BaseHandler
	orderService OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		orderService: orderService,
	}
}

// RegisterRoutes registers all order handler routes
func (h *OrderHandler) RegisterRoutes(r chi.Router, sessionMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Get("/pesan/{id}", h.OrderForm)
		r.Post("/pesan/{id}", h.PlaceOrder)
	})
	r.Group(func(r chi.Router) {
		r.Use(adminMiddleware)
		r.Get("/pesanan", h.ListOrders)
	})
}

// OrderFormResponse is the payload of the order form view
type OrderFormResponse struct {
	Product *models.Product `json:"product"`
	Flash   string          `json:"flash,omitempty"`
}

// OrderForm handles GET /pesan/{id}
// @Summary Order form data
// @Description Supply the product (and pending flash message) for the externally rendered order form
// @Tags orders
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} handlers.OrderFormResponse
// @Success 303 "Redirect to / when the product does not exist"
// @Router /pesan/{id} [get]
func (h *OrderHandler) OrderForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RedirectWithFlash(w, r, "/", "product not found")
		return
	}

	product, err := h.orderService.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.RedirectWithFlash(w, r, "/", "product not found")
			return
		}
		h.Logger.Error("failed to get product", zap.Error(err), zap.Int("id", id))
		h.RespondError(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	message, _ := flash.Pop(w, r)
	h.RespondJSON(w, http.StatusOK, OrderFormResponse{Product: product, Flash: message})
}

// PlaceOrder handles POST /pesan/{id}
// @Summary Place an order
// @Description Place an order for a product with orderer name, quantity and chosen color. The total price is computed from the product price at order time.
// @Tags orders
// @Accept x-www-form-urlencoded
// @Param id path int true "Product ID"
// @Param orderer_name formData string true "Orderer name"
// @Param quantity formData int true "Quantity (positive)"
// @Param color formData string true "Chosen color"
// @Success 303 "Redirect to / with a confirmation message"
// @Router /pesan/{id} [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RedirectWithFlash(w, r, "/", "product not found")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.RedirectWithFlash(w, r, fmt.Sprintf("/pesan/%d", id), "failed to parse order form")
		return
	}

	req := &models.PlaceOrderRequest{
		OrdererName: r.FormValue("orderer_name"),
		Quantity:    r.FormValue("quantity"),
		ChosenColor: r.FormValue("color"),
	}

	if _, err := h.orderService.PlaceOrder(r.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			h.RedirectWithFlash(w, r, "/", "product not found")
		case errors.Is(err, models.ErrValidation):
			h.RedirectWithFlash(w, r, fmt.Sprintf("/pesan/%d", id), "orderer name, a positive quantity and a color are required")
		default:
			h.Logger.Error("failed to place order", zap.Error(err), zap.Int("product_id", id))
			h.RedirectWithFlash(w, r, "/", "failed to place order")
		}
		return
	}

	h.RedirectWithFlash(w, r, "/", "order saved")
}

// ListOrders handles GET /pesanan
// @Summary List orders
// @Description List all orders joined with their products. Admin only.
// @Tags orders
// @Produce json
// @Success 200 {array} models.OrderWithProduct
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /pesanan [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.Logger.Error("failed to list orders", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	h.RespondJSON(w, http.StatusOK, orders)
}
