package handlers

//go:generate mockgen -source=feedback.go -destination=feedback_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"github.com/sbilibin2017/gw-finance-ledger/internal/services"
)

// FeedbackService records and lists the caller's feedback.
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, ownerID *int64, content string, rating *int) (*models.Feedback, error)
	ListFeedback(ctx context.Context, ownerID int64) ([]models.Feedback, error)
}

// FeedbackResponse represents the caller's feedback
// swagger:model FeedbackResponse
type FeedbackResponse struct {
	Feedback []models.Feedback `json:"feedback"`
}

// NewGetFeedbackHandler returns an HTTP handler listing the caller's feedback.
// @Summary List feedback
// @Description Returns the feedback the caller has left, newest first
// @Tags intake
// @Produce json
// @Success 200 {object} handlers.FeedbackResponse "Feedback"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /feedback [get]
// @Security CookieAuth
func NewGetFeedbackHandler(svc FeedbackService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity(w, r)
		if !ok {
			return
		}

		items, err := svc.ListFeedback(r.Context(), id.UserID)
		if err != nil {
			writeServiceError(w, r, err, "list feedback")
			return
		}
		if items == nil {
			items = []models.Feedback{}
		}

		writeJSON(w, http.StatusOK, FeedbackResponse{Feedback: items})
	}
}

// NewPostFeedbackHandler returns an HTTP handler that records feedback.
// @Summary Leave feedback
// @Description Records the caller's experience with an optional 1 to 5 rating
// @Tags intake
// @Accept x-www-form-urlencoded
// @Produce json
// @Param experience formData string true "Experience"
// @Param rating formData integer false "Rating, 1 to 5"
// @Success 303 "Redirect to /feedback"
// @Failure 400 {object} handlers.ErrorResponse "Invalid form field"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /feedback [post]
// @Security CookieAuth
func NewPostFeedbackHandler(svc FeedbackService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity(w, r)
		if !ok {
			return
		}
		if !parseForm(w, r) {
			return
		}

		rating, err := services.ParseRating(r.PostForm.Get("rating"))
		if err != nil {
			writeServiceError(w, r, err, "feedback")
			return
		}

		ownerID := id.UserID
		if _, err := svc.SubmitFeedback(r.Context(), &ownerID, r.PostForm.Get("experience"), rating); err != nil {
			writeServiceError(w, r, err, "feedback")
			return
		}

		http.Redirect(w, r, "/feedback", http.StatusSeeOther)
	}
}
