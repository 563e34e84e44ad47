package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kerudungstore/backend/internal/models"
)

// productRepository implements ProductRepository
type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) *productRepository {
	return &productRepository{
		db: db,
	}
}

// Create inserts a new product into the database
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, fabric_type, color, price, description, image)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		product.Name,
		product.FabricType,
		product.Color,
		product.Price,
		toNullString(product.Description),
		toNullString(product.Image),
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	product.ID = int(id)
	return nil
}

// GetByID retrieves a product by ID
func (r *productRepository) GetByID(ctx context.Context, productID int) (*models.Product, error) {
	query := `
		SELECT id, name, fabric_type, color, price, description, image
		FROM products
		WHERE id = ?
		LIMIT 1
	`

	product := &models.Product{}
	var description, image sql.NullString
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&product.ID,
		&product.Name,
		&product.FabricType,
		&product.Color,
		&product.Price,
		&description,
		&image,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product %d: %w", productID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	product.Description = description.String
	product.Image = image.String
	return product, nil
}

// List retrieves all products
func (r *productRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, fabric_type, color, price, description, image
		FROM products
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var product models.Product
		var description, image sql.NullString
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.FabricType,
			&product.Color,
			&product.Price,
			&description,
			&image,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		product.Description = description.String
		product.Image = image.String
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return products, nil
}

// Delete removes a product by ID.
// Deleting an unknown id surfaces as models.ErrNotFound.
func (r *productRepository) Delete(ctx context.Context, productID int) error {
	query := `DELETE FROM products WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %d: %w", productID, models.ErrNotFound)
	}

	return nil
}

// toNullString converts an optional string to its nullable SQL form
func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
