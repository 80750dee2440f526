package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-finance-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
)

// Authenticator defines the interface that the login service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, user *models.User) (string, error)
	Expiration() time.Duration
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by email and password and sets the session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param next query string false "Local path to continue to"
// @Success 303 "Redirect to next or /dashboard"
// @Failure 400 {object} handlers.ErrorResponse "Invalid form data"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Authenticator, tokens TokenIssuer, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseForm(w, r) {
			return
		}

		user, err := svc.Authenticate(r.Context(), r.PostForm.Get("email"), r.PostForm.Get("password"))
		if err != nil {
			writeServiceError(w, r, err, "login")
			return
		}

		token, err := tokens.Generate(r.Context(), user)
		if err != nil {
			logger.Log.Errorw("failed to generate token", "user_id", user.ID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(tokens.Expiration().Seconds()),
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		logger.Log.Infow("user logged in", "user_id", user.ID)
		http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusSeeOther)
	}
}

// safeNext accepts only local absolute paths so login cannot redirect off-site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return "/dashboard"
	}
	return next
}
