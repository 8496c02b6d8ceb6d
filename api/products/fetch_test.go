package products

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func testRouter() chi.Router {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	prm := NewProductRoutesManager(logger, nil, nil)
	r := chi.NewRouter()
	prm.RegisterRoutes(r)
	return r
}

func TestFetchProductByIDRejectsInvalidUUID(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFetchProductByIDRejectsNilUUID(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/products/00000000-0000-0000-0000-000000000000", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
