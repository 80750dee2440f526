package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-finance-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
)

// SessionRevoker invalidates a session token before it expires.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// NewLogoutHandler returns an HTTP handler that ends the caller's session.
// @Summary User logout
// @Description Revokes the session token and clears the session cookie
// @Tags auth
// @Success 303 "Redirect to /login"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [get]
// @Security CookieAuth
func NewLogoutHandler(sessions SessionRevoker, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity(w, r)
		if !ok {
			return
		}

		if err := sessions.Revoke(r.Context(), id.TokenID, time.Until(id.ExpiresAt)); err != nil {
			logger.Log.Errorw("failed to revoke session", "user_id", id.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		logger.Log.Infow("user logged out", "user_id", id.UserID)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
