package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-finance-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"github.com/stretchr/testify/require"
)

var testIdentity = models.Identity{
	UserID:    42,
	Username:  "alice",
	TokenID:   "jti-42",
	ExpiresAt: time.Now().Add(time.Hour),
}

func newFormRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withIdentity(req *http.Request, id models.Identity) *http.Request {
	return req.WithContext(middlewares.WithIdentity(req.Context(), id))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

