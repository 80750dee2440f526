package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-finance-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	claims := &jwt.Claims{
		UserID:           7,
		Username:         "alice",
		RegisteredClaims: gojwt.RegisteredClaims{ID: "jti-1"},
	}

	tests := []struct {
		name             string
		accept           string
		mockSetup        func(tk *MockTokener, rc *MockRevocationChecker)
		expectedStatus   int
		expectedLocation string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tk *MockTokener, rc *MockRevocationChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "NoTokenBrowserRedirects",
			accept: "text/html,application/xhtml+xml",
			mockSetup: func(tk *MockTokener, rc *MockRevocationChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/login?next=%2Fdashboard",
		},
		{
			name: "InvalidToken",
			mockSetup: func(tk *MockTokener, rc *MockRevocationChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "sometoken").Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "RevokedToken",
			mockSetup: func(tk *MockTokener, rc *MockRevocationChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(claims, nil)
				rc.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(true, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "RevocationStoreDown",
			mockSetup: func(tk *MockTokener, rc *MockRevocationChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(claims, nil)
				rc.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, errors.New("redis down"))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "ValidToken",
			mockSetup: func(tk *MockTokener, rc *MockRevocationChecker) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tk.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(claims, nil)
				rc.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokener := NewMockTokener(ctrl)
			revocations := NewMockRevocationChecker(ctrl)
			tt.mockSetup(tokener, revocations)

			var gotIdentity models.Identity
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotIdentity, _ = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tokener, revocations)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			}
			if tt.expectNextCalled {
				assert.Equal(t, int64(7), gotIdentity.UserID)
				assert.Equal(t, "alice", gotIdentity.Username)
				assert.Equal(t, "jti-1", gotIdentity.TokenID)
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		identity       *models.Identity
		expectedStatus int
	}{
		{name: "no identity", expectedStatus: http.StatusForbidden},
		{name: "regular user", identity: &models.Identity{UserID: 1}, expectedStatus: http.StatusForbidden},
		{name: "admin", identity: &models.Identity{UserID: 2, IsAdmin: true}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/contacts", nil)
			if tt.identity != nil {
				req = req.WithContext(WithIdentity(req.Context(), *tt.identity))
			}
			rr := httptest.NewRecorder()

			AdminMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
