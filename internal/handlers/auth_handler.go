package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kerudungstore/backend/internal/auth"
	"github.com/kerudungstore/backend/internal/flash"
	"github.com/kerudungstore/backend/internal/models"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Register performs a user credentials validation and creation.
	//
	// "req" parameter contains username, password and an optional role (defaults to "user").
	//
	// A duplicate username surfaces as models.ErrConflict, missing fields as models.ErrValidation.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	// Method Login performs a user credentials validation and returns the user with a session token.
	//
	// Bad credentials surface as models.ErrInvalidCredentials.
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService   AuthService
	sessionExpiry int // cookie max age in seconds
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger, sessionExpirySeconds int) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		authService:   authService,
		sessionExpiry: sessionExpirySeconds,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, sessionMiddleware func(http.Handler) http.Handler) {
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Get("/register", h.RegisterForm)
	r.Post("/register", h.Register)
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Get("/logout", h.Logout)
	})
}

// LoginForm handles GET /login
// @Summary Login form data
// @Description Supply the pending flash message for the externally rendered login form
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.FormResponse
// @Router /login [get]
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	message, _ := flash.Pop(w, r)
	h.RespondJSON(w, http.StatusOK, FormResponse{Flash: message})
}

// Login handles POST /login
// @Summary Authenticate
// @Description Authenticate with username and password. On success the session token is set as an HTTP-only cookie and the client is redirected home.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 "Redirect to / on success, back to /login on failure"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.RedirectWithFlash(w, r, "/login", "failed to parse login form")
		return
	}

	req := &models.LoginRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	user, token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if !errors.Is(err, models.ErrInvalidCredentials) {
			h.Logger.Error("login failed", zap.Error(err))
		}
		h.RedirectWithFlash(w, r, "/login", "login failed")
		return
	}

	h.setSessionCookie(w, token)
	h.Logger.Info("user logged in", zap.String("username", user.Username))
	h.Redirect(w, r, "/")
}

// RegisterForm handles GET /register
// @Summary Registration form data
// @Description Supply the pending flash message for the externally rendered registration form
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.FormResponse
// @Router /register [get]
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	message, _ := flash.Pop(w, r)
	h.RespondJSON(w, http.StatusOK, FormResponse{Flash: message})
}

// Register handles POST /register
// @Summary Register a new user
// @Description Create a new account. The optional role field defaults to "user". Redirects to the login view on success.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param role formData string false "Role (admin or user, default user)"
// @Success 303 "Redirect to /login on success, back to /register on failure"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.RedirectWithFlash(w, r, "/register", "failed to parse registration form")
		return
	}

	req := &models.RegisterRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
	}

	if _, err := h.authService.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, models.ErrConflict):
			h.RedirectWithFlash(w, r, "/register", "registration failed: username already taken")
		case errors.Is(err, models.ErrValidation):
			h.RedirectWithFlash(w, r, "/register", "registration failed: username and password are required")
		default:
			h.Logger.Error("failed to register user", zap.Error(err))
			h.RedirectWithFlash(w, r, "/register", "registration failed")
		}
		return
	}

	h.RedirectWithFlash(w, r, "/login", "registration successful, please log in")
}

// Logout handles GET /logout
// @Summary Log out
// @Description Invalidate the session cookie and redirect to the login view
// @Tags auth
// @Success 303 "Redirect to /login"
// @Router /logout [get]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.Redirect(w, r, "/login")
}

// setSessionCookie sets the session token as an HTTP-only cookie
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.sessionExpiry,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
