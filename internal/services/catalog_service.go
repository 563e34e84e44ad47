package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kerudungstore/backend/internal/models"
	"github.com/kerudungstore/backend/internal/storage"
)

// ProductRepository is the interface that wraps methods for Product table data access
type ProductRepository interface {
	// Method Create inserts a new product into the database.
	Create(ctx context.Context, product *models.Product) error
	// Method GetByID retrieves a product by ID.
	//
	// If product with such ID does not exist, models.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, productID int) (*models.Product, error)
	// Method List retrieves all products.
	List(ctx context.Context) ([]models.Product, error)
	// Method Delete removes a product by ID.
	//
	// If product with such ID does not exist, models.ErrNotFound will be returned.
	Delete(ctx context.Context, productID int) error
}

// ImageStorage is the interface that wraps methods for product image persistence
type ImageStorage interface {
	// Method Save writes the file content under the given filename.
	Save(filename string, r io.Reader) error
	// Method Delete removes a stored file.
	Delete(filename string) error
}

// catalogService implements CatalogService
type catalogService struct {
	productRepo ProductRepository
	orderRepo   OrderRepository
	images      ImageStorage
	logger      *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo ProductRepository, orderRepo OrderRepository, images ImageStorage, logger *zap.Logger) *catalogService {
	return &catalogService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		images:      images,
		logger:      logger,
	}
}

// ListProducts returns all products plus the aggregate ordered quantity shown
// on the home view
func (s *catalogService) ListProducts(ctx context.Context) (*models.Catalog, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	totalOrdered, err := s.orderRepo.SumQuantity(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Catalog{
		Products:     products,
		TotalOrdered: totalOrdered,
	}, nil
}

// CreateProduct validates the form input and creates a product, persisting the
// optional image first. If the row insert fails afterwards the saved image is
// removed again, so either both exist or neither does.
func (s *catalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest, imageFile io.Reader, imageFilename string) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	fabricType := strings.TrimSpace(req.FabricType)
	color := strings.TrimSpace(req.Color)
	if name == "" || fabricType == "" || color == "" || strings.TrimSpace(req.Price) == "" {
		return nil, fmt.Errorf("name, fabric type, color and price are required: %w", models.ErrValidation)
	}

	price, err := strconv.Atoi(strings.TrimSpace(req.Price))
	if err != nil {
		return nil, fmt.Errorf("price must be a whole number: %w", models.ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative: %w", models.ErrValidation)
	}

	// Persist the image before the row insert
	var filename string
	if imageFile != nil {
		filename = storage.SanitizeFilename(imageFilename)
		if filename == "" {
			return nil, fmt.Errorf("image filename %q is not usable: %w", imageFilename, models.ErrValidation)
		}
		if err := s.images.Save(filename, imageFile); err != nil {
			return nil, fmt.Errorf("failed to save product image: %w", err)
		}
	}

	product := &models.Product{
		Name:        name,
		FabricType:  fabricType,
		Color:       color,
		Price:       price,
		Description: strings.TrimSpace(req.Description),
		Image:       filename,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		// Compensate: don't leave an orphaned image behind
		if filename != "" {
			if rmErr := s.images.Delete(filename); rmErr != nil {
				s.logger.Warn("failed to remove image after insert failure",
					zap.String("filename", filename), zap.Error(rmErr))
			}
		}
		return nil, err
	}

	s.logger.Info("product created", zap.Int("id", product.ID), zap.String("name", product.Name))
	return product, nil
}

// DeleteProduct removes a product by id. Existing orders referencing the
// product and its image file are left untouched.
func (s *catalogService) DeleteProduct(ctx context.Context, productID int) error {
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	s.logger.Info("product deleted", zap.Int("id", productID))
	return nil
}
