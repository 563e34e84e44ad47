package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kerudungstore/backend/internal/models"
)

// OrderRepository is the interface that wraps methods for Order table data access
type OrderRepository interface {
	// Method Create inserts a new order into the database.
	Create(ctx context.Context, order *models.Order) error
	// Method ListWithProducts retrieves all orders joined with their products.
	//
	// Orders whose product has since been deleted come back with a nil product.
	ListWithProducts(ctx context.Context) ([]models.OrderWithProduct, error)
	// Method SumQuantity returns the total ordered quantity across all orders, 0 when none.
	SumQuantity(ctx context.Context) (int, error)
}

// orderService implements OrderService
type orderService struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	logger      *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository, productRepo ProductRepository, logger *zap.Logger) *orderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetProduct resolves the product an order form is shown for
func (s *orderService) GetProduct(ctx context.Context, productID int) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, productID)
}

// PlaceOrder validates the form input and creates an order against an existing
// product. The total price is computed from the product price at order time and
// stored, never recomputed later. The chosen color is free form and not checked
// against the product's color.
func (s *orderService) PlaceOrder(ctx context.Context, productID int, req *models.PlaceOrderRequest) (*models.Order, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	ordererName := strings.TrimSpace(req.OrdererName)
	chosenColor := strings.TrimSpace(req.ChosenColor)
	if ordererName == "" || chosenColor == "" || strings.TrimSpace(req.Quantity) == "" {
		return nil, fmt.Errorf("orderer name, quantity and color are required: %w", models.ErrValidation)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(req.Quantity))
	if err != nil {
		return nil, fmt.Errorf("quantity must be a whole number: %w", models.ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", models.ErrValidation)
	}

	order := &models.Order{
		ProductID:   product.ID,
		OrdererName: ordererName,
		Quantity:    quantity,
		TotalPrice:  quantity * product.Price,
		ChosenColor: chosenColor,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.Int("id", order.ID),
		zap.Int("product_id", order.ProductID),
		zap.Int("quantity", order.Quantity),
		zap.Int("total_price", order.TotalPrice),
	)
	return order, nil
}

// ListOrders returns all orders with their products for the admin view
func (s *orderService) ListOrders(ctx context.Context) ([]models.OrderWithProduct, error) {
	return s.orderRepo.ListWithProducts(ctx)
}
