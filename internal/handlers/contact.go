package handlers

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
)

// ContactSubmitter records contact form messages.
type ContactSubmitter interface {
	SubmitContact(ctx context.Context, name, email, message string) (*models.Contact, error)
}

// ContactLister lists contact form messages.
type ContactLister interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
}

// ContactsResponse represents the list of contact messages
// swagger:model ContactsResponse
type ContactsResponse struct {
	Contacts []models.Contact `json:"contacts"`
}

// NewContactHandler returns an HTTP handler for the public contact form.
// @Summary Contact form
// @Description Records a message from a visitor. No session required.
// @Tags intake
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param message formData string false "Message"
// @Success 303 "Redirect to /contact"
// @Failure 400 {object} handlers.ErrorResponse "Invalid form field"
// @Failure 409 {object} handlers.ErrorResponse "Email already used"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /contact [post]
func NewContactHandler(svc ContactSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseForm(w, r) {
			return
		}

		_, err := svc.SubmitContact(
			r.Context(),
			r.PostForm.Get("name"),
			r.PostForm.Get("email"),
			r.PostForm.Get("message"),
		)
		if err != nil {
			writeServiceError(w, r, err, "contact")
			return
		}

		http.Redirect(w, r, "/contact", http.StatusSeeOther)
	}
}

// NewListContactsHandler returns an HTTP handler listing contact messages.
// @Summary List contact messages
// @Description Returns every contact message, newest first. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.ContactsResponse "Contacts"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /admin/contacts [get]
// @Security CookieAuth
func NewListContactsHandler(svc ContactLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := svc.ListContacts(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "list contacts")
			return
		}
		if contacts == nil {
			contacts = []models.Contact{}
		}

		writeJSON(w, http.StatusOK, ContactsResponse{Contacts: contacts})
	}
}
