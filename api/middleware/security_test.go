package middleware

import (
	"lumi_noir_server/lib"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func csrfProtected(t *testing.T) http.Handler {
	t.Helper()
	mw := &Middleware{}
	return mw.CSRFMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestCSRFMiddlewareSkipsSafeMethods(t *testing.T) {
	handler := csrfProtected(t)

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(method, "/auth/me", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code, "method %s", method)
	}
}

func TestCSRFMiddlewareRejectsMissingCookie(t *testing.T) {
	handler := csrfProtected(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set("X-CSRF-Token", "some-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFMiddlewareRejectsMismatchedToken(t *testing.T) {
	handler := csrfProtected(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.AddCookie(&http.Cookie{Name: lib.CSRFCookieName, Value: "cookie-token"})
	req.Header.Set("X-CSRF-Token", "different-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFMiddlewareRejectsMissingHeader(t *testing.T) {
	handler := csrfProtected(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.AddCookie(&http.Cookie{Name: lib.CSRFCookieName, Value: "cookie-token"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFMiddlewareAcceptsMatchingToken(t *testing.T) {
	handler := csrfProtected(t)

	token, err := lib.GenerateRandomToken()
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: lib.CSRFCookieName, Value: token})
	req.Header.Set("X-CSRF-Token", token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
