package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = time.Hour

// bcrypt ignores input beyond this many bytes.
const maxPasswordBytes = 72

// Column limits of the users table.
const (
	maxUsernameLength  = 100
	maxUserEmailLength = 100
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error)
	GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	SetResetToken(ctx context.Context, userID int64, token string, expiry time.Time) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// AuthService handles registration, login and password resets.
type AuthService struct {
	reader UserReader
	writer UserWriter
	events KafkaWriter
	now    func() time.Time
}

// NewAuthService creates a new AuthService instance. events may be nil.
func NewAuthService(reader UserReader, writer UserWriter, events KafkaWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		events: events,
		now:    time.Now,
	}
}

// Register creates a user with a bcrypt-hashed password.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, invalid("username", "is required")
	}
	if err := checkLength("username", username, maxUsernameLength); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, invalid("email", "is required")
	}
	if err := checkLength("email", email, maxUserEmailLength); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	existing, err := svc.reader.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	for _, u := range existing {
		if u.Email == email {
			logger.Log.Warnw("email already registered", "email", email)
			return nil, ErrDuplicateEmail
		}
	}
	if len(existing) > 0 {
		logger.Log.Warnw("username already taken", "username", username)
		return nil, ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate checks the credentials and returns the matching user.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if user == nil {
		// Spend the same bcrypt work so response time does not reveal the miss.
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// RequestPasswordReset issues a reset token for the account with the given
// email and publishes it for delivery. Unknown emails succeed silently.
func (svc *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email", "is required")
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Infow("password reset requested for unknown email")
		return nil
	}

	token := uuid.NewString()
	expiry := svc.now().Add(ResetTokenTTL)
	if err := svc.writer.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		logger.Log.Errorw("failed to store reset token", "user_id", user.ID, "err", err)
		return err
	}

	publishEvent(ctx, svc.events, EventPasswordResetRequested, user.ID, map[string]any{
		"email":      user.Email,
		"username":   user.Username,
		"token":      token,
		"expires_at": expiry.UTC(),
	})
	return nil
}

// ResetPassword sets a new password for the holder of an unexpired token.
func (svc *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidResetToken
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := svc.reader.GetByResetToken(ctx, token, svc.now())
	if err != nil {
		logger.Log.Errorw("failed to look up reset token", "err", err)
		return err
	}
	if user == nil {
		return ErrInvalidResetToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", user.ID, "err", err)
		return err
	}

	logger.Log.Infow("password reset", "user_id", user.ID)
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return invalid("password", "is required")
	}
	if len(password) > maxPasswordBytes {
		return invalid("password", "must be at most 72 bytes")
	}
	return nil
}

var (
	dummyHashOnce  sync.Once
	dummyHashValue []byte
)

func dummyHash() []byte {
	dummyHashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to build dummy hash", "err", err)
			return
		}
		dummyHashValue = h
	})
	return dummyHashValue
}

