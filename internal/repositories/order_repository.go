package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kerudungstore/backend/internal/models"
)

// orderRepository implements OrderRepository
type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *orderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create inserts a new order into the database
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (product_id, orderer_name, quantity, total_price, chosen_color)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		order.ProductID,
		order.OrdererName,
		order.Quantity,
		order.TotalPrice,
		order.ChosenColor,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	order.ID = int(id)
	return nil
}

// ListWithProducts retrieves all orders joined with their products.
// Orders whose product has since been deleted come back with a nil product.
func (r *orderRepository) ListWithProducts(ctx context.Context) ([]models.OrderWithProduct, error) {
	query := `
		SELECT o.id, o.product_id, o.orderer_name, o.quantity, o.total_price, o.chosen_color,
		       p.id, p.name, p.fabric_type, p.color, p.price, p.description, p.image
		FROM orders o
		LEFT JOIN products p ON p.id = o.product_id
		ORDER BY o.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.OrderWithProduct{}
	for rows.Next() {
		var order models.OrderWithProduct
		var productID, productPrice sql.NullInt64
		var productName, fabricType, productColor, description, image sql.NullString
		err := rows.Scan(
			&order.ID,
			&order.ProductID,
			&order.OrdererName,
			&order.Quantity,
			&order.TotalPrice,
			&order.ChosenColor,
			&productID,
			&productName,
			&fabricType,
			&productColor,
			&productPrice,
			&description,
			&image,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if productID.Valid {
			order.Product = &models.Product{
				ID:          int(productID.Int64),
				Name:        productName.String,
				FabricType:  fabricType.String,
				Color:       productColor.String,
				Price:       int(productPrice.Int64),
				Description: description.String,
				Image:       image.String,
			}
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return orders, nil
}

// SumQuantity returns the total ordered quantity across all orders, 0 when none
func (r *orderRepository) SumQuantity(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM orders`

	var total int
	err := r.db.QueryRowContext(ctx, query).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum order quantity: %w", err)
	}

	return total, nil
}
