package services

//go:generate mockgen -source=intake.go -destination=intake_mock.go -package=services

import (
	"context"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
)

// Feedback ratings are on a 1..5 scale.
const (
	MinRating = 1
	MaxRating = 5
)

// ContactWriter stores contact messages.
type ContactWriter interface {
	Save(ctx context.Context, name, email, message string) (*models.Contact, error)
}

// ContactReader lists contact messages.
type ContactReader interface {
	List(ctx context.Context) ([]models.Contact, error)
}

// FeedbackWriter stores feedback.
type FeedbackWriter interface {
	Save(ctx context.Context, userID *int64, content string, rating *int) (*models.Feedback, error)
}

// FeedbackReader lists feedback.
type FeedbackReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.Feedback, error)
}

// Column limits of the contact table.
const (
	maxContactNameLength  = 100
	maxContactEmailLength = 120
)

// IntakeService captures contact messages and feedback.
type IntakeService struct {
	contactWriter  ContactWriter
	contactReader  ContactReader
	feedbackWriter FeedbackWriter
	feedbackReader FeedbackReader
}

func NewIntakeService(
	contactWriter ContactWriter,
	contactReader ContactReader,
	feedbackWriter FeedbackWriter,
	feedbackReader FeedbackReader,
) *IntakeService {
	return &IntakeService{
		contactWriter:  contactWriter,
		contactReader:  contactReader,
		feedbackWriter: feedbackWriter,
		feedbackReader: feedbackReader,
	}
}

// SubmitContact records a contact message. Name and email are required.
func (s *IntakeService) SubmitContact(ctx context.Context, name, email, message string) (*models.Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	if err := checkLength("name", name, maxContactNameLength); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, invalid("email", "is required")
	}
	if err := checkLength("email", email, maxContactEmailLength); err != nil {
		return nil, err
	}

	contact, err := s.contactWriter.Save(ctx, name, email, message)
	if err != nil {
		logger.Log.Errorw("failed to save contact", "email", email, "error", err)
		return nil, err
	}
	return contact, nil
}

// ListContacts returns all contact messages, newest first.
func (s *IntakeService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactReader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list contacts", "error", err)
		return nil, err
	}
	return contacts, nil
}

// SubmitFeedback records feedback. ownerID and rating are optional.
func (s *IntakeService) SubmitFeedback(ctx context.Context, ownerID *int64, content string, rating *int) (*models.Feedback, error) {
	if strings.TrimSpace(content) == "" {
		return nil, invalid("content", "is required")
	}
	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		return nil, invalid("rating", "must be between 1 and 5")
	}

	feedback, err := s.feedbackWriter.Save(ctx, ownerID, content, rating)
	if err != nil {
		logger.Log.Errorw("failed to save feedback", "error", err)
		return nil, err
	}
	return feedback, nil
}

// ListFeedback returns the owner's feedback, newest first.
func (s *IntakeService) ListFeedback(ctx context.Context, ownerID int64) ([]models.Feedback, error) {
	items, err := s.feedbackReader.ListByUserID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list feedback", "user_id", ownerID, "error", err)
		return nil, err
	}
	return items, nil
}

// ParseRating parses an optional rating form value. Blank means no rating.
func ParseRating(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, invalid("rating", "must be an integer")
	}
	return &n, nil
}
