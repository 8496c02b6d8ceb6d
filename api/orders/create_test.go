package orders

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func testManager() *OrderRoutesManager {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	return NewOrderRoutesManager(logger, nil, nil, nil)
}

func newTestRouter(orm *OrderRoutesManager) chi.Router {
	r := chi.NewRouter()
	orm.RegisterRoutes(r)
	return r
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	orm := testManager()

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	orm.CreateOrder(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderRejectsMissingForm(t *testing.T) {
	orm := testManager()

	body := `{"form":{"customer_name":"","email":"not-an-email","address_line1":""},"items":[]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	w := httptest.NewRecorder()

	orm.CreateOrder(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderRejectsInvalidProductID(t *testing.T) {
	orm := testManager()

	body := `{
		"form":{"customer_name":"Nadia","email":"nadia@example.com","address_line1":"1 Rue Noire"},
		"items":[{"productId":"not-a-uuid","quantity":1}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	w := httptest.NewRecorder()

	orm.CreateOrder(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFetchOrderRejectsInvalidID(t *testing.T) {
	orm := testManager()

	r := newTestRouter(orm)
	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
