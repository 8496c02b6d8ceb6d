package content

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lumi_noir_server/locale"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() chi.Router {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	crm := NewContentRoutesManager(logger, nil, nil)
	r := chi.NewRouter()
	crm.RegisterRoutes(r)
	return r
}

func TestRequestLanguageQueryWinsOverHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/content/about?lang=fr", nil)
	req.Header.Set("Accept-Language", "ar-MA,ar;q=0.9")

	assert.Equal(t, locale.French, requestLanguage(req))
}

func TestRequestLanguageNegotiatesHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/content/about", nil)
	req.Header.Set("Accept-Language", "ar-MA,ar;q=0.9,en;q=0.5")

	assert.Equal(t, locale.Arabic, requestLanguage(req))
}

func TestRequestLanguageFallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/content/about?lang=de", nil)

	assert.Equal(t, locale.DefaultLanguage, requestLanguage(req))
}

func TestFetchDictionaryArabicIsRTL(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/i18n/ar", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"rtl":true`)
	assert.Contains(t, body, "nav.cart")
}

func TestFetchDictionaryUnsupportedLanguage(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/i18n/de", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
