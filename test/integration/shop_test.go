package integration

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kerudungstore/backend/internal/auth"
	"github.com/kerudungstore/backend/internal/config"
	"github.com/kerudungstore/backend/internal/handlers"
	"github.com/kerudungstore/backend/internal/models"
	"github.com/kerudungstore/backend/internal/repositories"
	"github.com/kerudungstore/backend/internal/services"
	"github.com/kerudungstore/backend/internal/storage"
)

var (
	testDB     *sql.DB
	testRouter chi.Router
	testLogger *zap.Logger
	testTokens *auth.TokenGenerator
)

// TestMain sets up and tears down the test environment
func TestMain(m *testing.M) {
	var err error
	testLogger, err = zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	cfg, err := config.LoadTestConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load test config: %v", err))
	}
	if cfg.Database.Host == "" {
		// No test database configured, every test skips
		os.Exit(m.Run())
	}

	testDB, err = sql.Open("mysql", cfg.DSN())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to test database: %v", err))
	}

	if err = testDB.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to ping test database: %v", err))
	}

	setupTestSchema(testDB)

	uploadDir := cfg.UploadDir
	removeUploadDir := false
	if uploadDir == "" {
		uploadDir, err = os.MkdirTemp("", "shop-img-*")
		if err != nil {
			panic(fmt.Sprintf("Failed to create upload dir: %v", err))
		}
		removeUploadDir = true
	}

	testTokens = auth.NewTokenGenerator(cfg.Session.Secret, cfg.Session.Expiry)
	testRouter = setupTestRouter(testDB, testTokens, uploadDir, testLogger)

	code := m.Run()

	if removeUploadDir {
		os.RemoveAll(uploadDir)
	}
	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

// setupTestSchema creates the test database schema
func setupTestSchema(db *sql.DB) {
	usersTable := `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(150) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(10) NOT NULL DEFAULT 'user'
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	productsTable := `
		CREATE TABLE IF NOT EXISTS products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			fabric_type VARCHAR(50) NOT NULL,
			color VARCHAR(50) NOT NULL,
			price INT NOT NULL,
			description TEXT NULL,
			image VARCHAR(255) NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	ordersTable := `
		CREATE TABLE IF NOT EXISTS orders (
			id INT AUTO_INCREMENT PRIMARY KEY,
			product_id INT NOT NULL,
			orderer_name VARCHAR(100) NOT NULL,
			quantity INT NOT NULL,
			total_price INT NOT NULL,
			chosen_color VARCHAR(50) NOT NULL,
			INDEX idx_orders_product_id (product_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	db.Exec(usersTable)
	db.Exec(productsTable)
	db.Exec(ordersTable)
}

// setupTestRouter creates a test router with all handlers
func setupTestRouter(db *sql.DB, tokens *auth.TokenGenerator, uploadDir string, logger *zap.Logger) chi.Router {
	imageStorage := storage.NewLocalStorage(uploadDir)

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	authSvc := services.NewAuthService(userRepo, tokens, logger)
	catalogSvc := services.NewCatalogService(productRepo, orderRepo, imageStorage, logger)
	orderSvc := services.NewOrderService(orderRepo, productRepo, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, 3600)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc, logger)
	orderHandler := handlers.NewOrderHandler(orderSvc, logger)
	imageHandler := handlers.NewImageHandler(imageStorage, logger)

	sessionMiddleware := auth.SessionMiddleware(tokens)
	adminMiddleware := auth.AdminMiddleware(tokens)

	r := chi.NewRouter()
	authHandler.RegisterRoutes(r, sessionMiddleware)
	catalogHandler.RegisterRoutes(r, adminMiddleware)
	orderHandler.RegisterRoutes(r, sessionMiddleware, adminMiddleware)
	imageHandler.RegisterRoutes(r)

	return r
}

// seedTestData resets the tables and inserts a known admin and user
func seedTestData(t *testing.T) {
	t.Helper()

	for _, table := range []string{"orders", "products", "users"} {
		_, err := testDB.Exec("DELETE FROM " + table)
		require.NoError(t, err, "Failed to clear "+table)
		_, err = testDB.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1")
		require.NoError(t, err, "Failed to reset "+table+" AUTO_INCREMENT")
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = testDB.Exec(`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		"admin", string(adminHash), models.RoleAdmin)
	require.NoError(t, err, "Failed to seed admin")

	userHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = testDB.Exec(`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		"alice", string(userHash), models.RoleUser)
	require.NoError(t, err, "Failed to seed user")
}

// sessionCookieFor builds a valid session cookie for the given seeded user
func sessionCookieFor(t *testing.T, userID int, username string, role models.Role) *http.Cookie {
	t.Helper()
	token, err := testTokens.GenerateToken(userID, username, role)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

// postForm performs a form POST against the test router
func postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

// get performs a GET against the test router
func get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

// skipWithoutDB skips the test when no test database is configured
func skipWithoutDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	if testDB == nil {
		t.Skip("TEST_DB_HOST not set, skipping integration tests")
	}
}

func TestIntegration_LoginFlow(t *testing.T) {
	skipWithoutDB(t)
	seedTestData(t)

	t.Run("valid credentials set session cookie", func(t *testing.T) {
		w := postForm("/login", url.Values{"username": {"alice"}, "password": {"password"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		var token string
		for _, c := range w.Result().Cookies() {
			if c.Name == auth.CookieName {
				token = c.Value
			}
		}
		require.NotEmpty(t, token, "session cookie should be set")

		session, err := testTokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", session.Username)
		assert.Equal(t, models.RoleUser, session.Role)
	})

	t.Run("wrong password redirects back to login", func(t *testing.T) {
		w := postForm("/login", url.Values{"username": {"alice"}, "password": {"wrong"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("registration then login", func(t *testing.T) {
		w := postForm("/register", url.Values{"username": {"bob"}, "password": {"hunter2"}})
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))

		var role string
		err := testDB.QueryRow("SELECT role FROM users WHERE username = ?", "bob").Scan(&role)
		require.NoError(t, err)
		assert.Equal(t, "user", role)

		w = postForm("/login", url.Values{"username": {"bob"}, "password": {"hunter2"}})
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("duplicate registration redirects back", func(t *testing.T) {
		w := postForm("/register", url.Values{"username": {"alice"}, "password": {"whatever"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/register", w.Header().Get("Location"))
	})
}

func TestIntegration_AccessControl(t *testing.T) {
	skipWithoutDB(t)
	seedTestData(t)

	aliceCookie := sessionCookieFor(t, 2, "alice", models.RoleUser)

	t.Run("anonymous request redirected to login", func(t *testing.T) {
		w := get("/pesan/1")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("non-admin redirected home from admin routes", func(t *testing.T) {
		for _, path := range []string{"/produk/tambah", "/produk/hapus/1", "/pesanan"} {
			w := get(path, aliceCookie)

			assert.Equal(t, http.StatusSeeOther, w.Code, path)
			assert.Equal(t, "/", w.Header().Get("Location"), path)
		}
	})

	t.Run("tampered token treated as anonymous", func(t *testing.T) {
		w := get("/pesanan", &http.Cookie{Name: auth.CookieName, Value: "garbage"})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("expired token treated as anonymous", func(t *testing.T) {
		expired := auth.NewTokenGenerator("test-session-secret", -time.Minute)
		token, err := expired.GenerateToken(2, "alice", models.RoleUser)
		require.NoError(t, err)

		w := get("/pesan/1", &http.Cookie{Name: auth.CookieName, Value: token})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})
}

func TestIntegration_CatalogAndOrders(t *testing.T) {
	skipWithoutDB(t)
	seedTestData(t)

	adminCookie := sessionCookieFor(t, 1, "admin", models.RoleAdmin)
	aliceCookie := sessionCookieFor(t, 2, "alice", models.RoleUser)

	// Admin creates a product
	w := postForm("/produk/tambah", url.Values{
		"name":        {"Kerudung Batik"},
		"fabric_type": {"Cotton"},
		"color":       {"Blue"},
		"price":       {"100000"},
		"description": {"Hand made batik pattern"},
	}, adminCookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	var productID int
	err := testDB.QueryRow("SELECT id FROM products WHERE name = ?", "Kerudung Batik").Scan(&productID)
	require.NoError(t, err)

	// Alice places an order, total price frozen at quantity * price
	w = postForm(fmt.Sprintf("/pesan/%d", productID), url.Values{
		"orderer_name": {"Alice"},
		"quantity":     {"3"},
		"color":        {"Blue"},
	}, aliceCookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var totalPrice, quantity int
	err = testDB.QueryRow("SELECT total_price, quantity FROM orders WHERE product_id = ?", productID).
		Scan(&totalPrice, &quantity)
	require.NoError(t, err)
	assert.Equal(t, 3, quantity)
	assert.Equal(t, 300000, totalPrice)

	// Aggregate ordered quantity shows up on the home view
	w = get("/", aliceCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalOrdered":3`)

	// Validation failures leave the order table untouched
	for _, form := range []url.Values{
		{"orderer_name": {"Alice"}, "quantity": {"0"}, "color": {"Blue"}},
		{"orderer_name": {"Alice"}, "quantity": {"-2"}, "color": {"Blue"}},
		{"orderer_name": {""}, "quantity": {"1"}, "color": {"Blue"}},
	} {
		w = postForm(fmt.Sprintf("/pesan/%d", productID), form, aliceCookie)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, fmt.Sprintf("/pesan/%d", productID), w.Header().Get("Location"))
	}
	var orderCount int
	err = testDB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&orderCount)
	require.NoError(t, err)
	assert.Equal(t, 1, orderCount)

	// Ordering an unknown product redirects home
	w = postForm("/pesan/9999", url.Values{
		"orderer_name": {"Alice"},
		"quantity":     {"1"},
		"color":        {"Blue"},
	}, aliceCookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Admin sees the order with its product
	w = get("/pesanan", adminCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kerudung Batik")
	assert.Contains(t, w.Body.String(), `"totalPrice":300000`)

	// Deleting the product keeps the order, now without a product
	w = get(fmt.Sprintf("/produk/hapus/%d", productID), adminCookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	err = testDB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&orderCount)
	require.NoError(t, err)
	assert.Equal(t, 1, orderCount)

	w = get("/pesanan", adminCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Kerudung Batik")
	assert.Contains(t, w.Body.String(), `"totalPrice":300000`)

	// Deleting again reports not found
	w = get(fmt.Sprintf("/produk/hapus/%d", productID), adminCookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestIntegration_ProductValidation(t *testing.T) {
	skipWithoutDB(t)
	seedTestData(t)

	adminCookie := sessionCookieFor(t, 1, "admin", models.RoleAdmin)

	w := postForm("/produk/tambah", url.Values{
		"name":        {"Kerudung Batik"},
		"fabric_type": {""},
		"color":       {"Blue"},
		"price":       {"100000"},
	}, adminCookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/produk/tambah", w.Header().Get("Location"))

	w = postForm("/produk/tambah", url.Values{
		"name":        {"Kerudung Batik"},
		"fabric_type": {"Cotton"},
		"color":       {"Blue"},
		"price":       {"cheap"},
	}, adminCookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/produk/tambah", w.Header().Get("Location"))

	var count int
	err := testDB.QueryRow("SELECT COUNT(*) FROM products").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
