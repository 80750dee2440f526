package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new account. Email and username must be unique. Password is hashed before storing.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /login"
// @Failure 400 {object} handlers.ErrorResponse "Invalid form field"
// @Failure 409 {object} handlers.ErrorResponse "Email or username already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseForm(w, r) {
			return
		}

		user, err := svc.Register(
			r.Context(),
			r.PostForm.Get("username"),
			r.PostForm.Get("email"),
			r.PostForm.Get("password"),
		)
		if err != nil {
			writeServiceError(w, r, err, "signup")
			return
		}

		logger.Log.Infow("user registered", "user_id", user.ID)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
