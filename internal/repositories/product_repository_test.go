package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerudungstore/backend/internal/models"
)

// setupProductTestRepository creates a product repository with a mock database
func setupProductTestRepository(t *testing.T) (*productRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewProductRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewProductRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewProductRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestProductRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		product       *models.Product
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name: "success with description and image",
			product: &models.Product{
				Name:        "Kerudung Batik",
				FabricType:  "Cotton",
				Color:       "Blue",
				Price:       100000,
				Description: "Hand made batik pattern",
				Image:       "batik.jpg",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO products`).
					WithArgs("Kerudung Batik", "Cotton", "Blue", 100000,
						sql.NullString{String: "Hand made batik pattern", Valid: true},
						sql.NullString{String: "batik.jpg", Valid: true}).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedID: 1,
		},
		{
			name: "success without optional fields",
			product: &models.Product{
				Name:       "Kerudung Polos",
				FabricType: "Silk",
				Color:      "White",
				Price:      75000,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO products`).
					WithArgs("Kerudung Polos", "Silk", "White", 75000,
						sql.NullString{}, sql.NullString{}).
					WillReturnResult(sqlmock.NewResult(2, 1))
			},
			expectedID: 2,
		},
		{
			name: "database error on insert",
			product: &models.Product{
				Name:       "Kerudung Batik",
				FabricType: "Cotton",
				Color:      "Blue",
				Price:      100000,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO products`).
					WithArgs("Kerudung Batik", "Cotton", "Blue", 100000,
						sql.NullString{}, sql.NullString{}).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProductTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.product)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.product.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	tests := []struct {
		name            string
		productID       int
		setupMock       func(sqlmock.Sqlmock)
		expectedError   bool
		notFound        bool
		expectedProduct *models.Product
	}{
		{
			name:      "success",
			productID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "fabric_type", "color", "price", "description", "image"}).
					AddRow(1, "Kerudung Batik", "Cotton", "Blue", 100000, "Hand made", "batik.jpg")
				mock.ExpectQuery(`SELECT id, name, fabric_type, color, price, description, image`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedProduct: &models.Product{
				ID:          1,
				Name:        "Kerudung Batik",
				FabricType:  "Cotton",
				Color:       "Blue",
				Price:       100000,
				Description: "Hand made",
				Image:       "batik.jpg",
			},
		},
		{
			name:      "null description and image",
			productID: 2,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "fabric_type", "color", "price", "description", "image"}).
					AddRow(2, "Kerudung Polos", "Silk", "White", 75000, nil, nil)
				mock.ExpectQuery(`SELECT id, name, fabric_type, color, price, description, image`).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectedProduct: &models.Product{
				ID:         2,
				Name:       "Kerudung Polos",
				FabricType: "Silk",
				Color:      "White",
				Price:      75000,
			},
		},
		{
			name:      "product not found",
			productID: 99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, fabric_type, color, price, description, image`).
					WithArgs(99).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			notFound:      true,
		},
		{
			name:      "database error",
			productID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, fabric_type, color, price, description, image`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProductTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			product, err := repo.GetByID(context.Background(), tt.productID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, product)
				if tt.notFound {
					assert.ErrorIs(t, err, models.ErrNotFound)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProduct, product)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepository_List(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedLen   int
	}{
		{
			name: "success with products",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "fabric_type", "color", "price", "description", "image"}).
					AddRow(1, "Kerudung Batik", "Cotton", "Blue", 100000, "Hand made", "batik.jpg").
					AddRow(2, "Kerudung Polos", "Silk", "White", 75000, nil, nil)
				mock.ExpectQuery(`SELECT id, name, fabric_type, color, price, description, image`).
					WillReturnRows(rows)
			},
			expectedLen: 2,
		},
		{
			name: "empty catalog",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "fabric_type", "color", "price", "description", "image"})
				mock.ExpectQuery(`SELECT id, name, fabric_type, color, price, description, image`).
					WillReturnRows(rows)
			},
			expectedLen: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, fabric_type, color, price, description, image`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProductTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			products, err := repo.List(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, products)
			} else {
				assert.NoError(t, err)
				assert.Len(t, products, tt.expectedLen)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		productID     int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		notFound      bool
	}{
		{
			name:      "success",
			productID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM products`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:      "product not found",
			productID: 99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM products`).
					WithArgs(99).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: true,
			notFound:      true,
		},
		{
			name:      "database error",
			productID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM products`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProductTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Delete(context.Background(), tt.productID)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.notFound {
					assert.ErrorIs(t, err, models.ErrNotFound)
				}
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
