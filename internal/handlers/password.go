package handlers

//go:generate mockgen -source=password.go -destination=password_mock.go -package=handlers

import (
	"context"
	"net/http"
)

// PasswordResetter issues reset tokens and applies new passwords.
type PasswordResetter interface {
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// MessageResponse represents a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// default: If the email is registered, a reset link has been sent
	Message string `json:"message"`
}

// NewForgotPasswordHandler returns an HTTP handler that starts a password reset.
// @Summary Forgot password
// @Description Issues a reset token for the email. The response is the same whether the email is registered or not.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Success 202 {object} handlers.MessageResponse "Accepted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid form field"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /forgot_password [post]
func NewForgotPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseForm(w, r) {
			return
		}

		if err := svc.RequestPasswordReset(r.Context(), r.PostForm.Get("email")); err != nil {
			writeServiceError(w, r, err, "forgot password")
			return
		}

		writeJSON(w, http.StatusAccepted, MessageResponse{
			Message: "If the email is registered, a reset link has been sent",
		})
	}
}

// NewResetPasswordHandler returns an HTTP handler that sets a new password.
// @Summary Reset password
// @Description Sets a new password for the holder of a valid reset token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param token formData string true "Reset token"
// @Param password formData string true "New password"
// @Success 303 "Redirect to /login"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reset_password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseForm(w, r) {
			return
		}

		if err := svc.ResetPassword(r.Context(), r.PostForm.Get("token"), r.PostForm.Get("password")); err != nil {
			writeServiceError(w, r, err, "reset password")
			return
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
