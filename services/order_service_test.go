package services

import (
	"lumi_noir_server/structs"
	"lumi_noir_server/structs/tables"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleCents(v int64) *int64 { return &v }

func TestBuildOrderItemsSnapshotsAndTotal(t *testing.T) {
	abaya := tables.Product{
		ID:             uuid.New(),
		Title:          "Classic Abaya",
		PriceCents:     8999,
		SalePriceCents: saleCents(7999),
		IsPublished:    true,
	}
	scarf := tables.Product{
		ID:          uuid.New(),
		Title:       "Silk Scarf",
		PriceCents:  4500,
		IsPublished: true,
	}

	requested := []structs.CheckoutItem{
		{ProductID: abaya.ID.String(), Quantity: 2},
		{ProductID: scarf.ID.String(), Quantity: 1},
	}

	items, total, err := buildOrderItems(requested, []tables.Product{abaya, scarf})
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Sale price wins over list price in the snapshot
	assert.Equal(t, "Classic Abaya", items[0].TitleSnapshot)
	assert.Equal(t, int64(7999), items[0].PriceCentsSnapshot)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(4500), items[1].PriceCentsSnapshot)

	assert.Equal(t, int64(7999*2+4500), total)
}

func TestBuildOrderItemsRejectsUnavailableProduct(t *testing.T) {
	published := tables.Product{ID: uuid.New(), Title: "Classic Abaya", PriceCents: 7999, IsPublished: true}

	// A product absent from the fetched set (unpublished or deleted) fails
	// the whole order, not just the line.
	requested := []structs.CheckoutItem{
		{ProductID: published.ID.String(), Quantity: 1},
		{ProductID: uuid.NewString(), Quantity: 1},
	}

	items, total, err := buildOrderItems(requested, []tables.Product{published})
	assert.ErrorIs(t, err, ErrProductUnavailable)
	assert.Nil(t, items)
	assert.Zero(t, total)
}

func TestBuildOrderItemsRejectsInvalidQuantity(t *testing.T) {
	product := tables.Product{ID: uuid.New(), Title: "Classic Abaya", PriceCents: 7999, IsPublished: true}

	_, _, err := buildOrderItems([]structs.CheckoutItem{
		{ProductID: product.ID.String(), Quantity: 0},
	}, []tables.Product{product})
	assert.Error(t, err)
}

func orderServiceWithKey(key string) *OrderService {
	cfg := &structs.Config{Auth: &structs.AuthConfig{EncryptionKey: key}}
	return NewOrderService(nil, cfg, nil, nil, nil)
}

func sampleOrder() *tables.Order {
	return &tables.Order{
		CustomerName: "Amira El-Sayed",
		Email:        "amira@example.com",
		Phone:        "+33612345678",
		ShippingAddress: tables.ShippingAddress{
			Line1:   "12 Rue de la Paix",
			City:    "Paris",
			Zip:     "75002",
			Country: "FR",
		},
	}
}

func TestOrderPIIEncryptionRoundTrip(t *testing.T) {
	os := orderServiceWithKey("0123456789abcdef0123456789abcdef")
	order := sampleOrder()

	require.NoError(t, os.encryptOrder(order))

	// Everything personal is ciphertext on the row; country stays readable.
	assert.NotEqual(t, "Amira El-Sayed", order.CustomerName)
	assert.NotEqual(t, "amira@example.com", order.Email)
	assert.NotEqual(t, "+33612345678", order.Phone)
	assert.NotEqual(t, "12 Rue de la Paix", order.ShippingAddress.Line1)
	assert.NotEqual(t, "Paris", order.ShippingAddress.City)
	assert.NotEqual(t, "75002", order.ShippingAddress.Zip)
	assert.Equal(t, "FR", order.ShippingAddress.Country)

	require.NoError(t, os.decryptOrder(order))
	assert.Equal(t, sampleOrder(), order)
}

func TestOrderPIIEncryptionDisabledWithoutKey(t *testing.T) {
	os := orderServiceWithKey("")
	order := sampleOrder()

	require.NoError(t, os.encryptOrder(order))
	assert.Equal(t, sampleOrder(), order)
}

func TestOrderPIIEncryptionRejectsBadKey(t *testing.T) {
	os := orderServiceWithKey("too-short")
	assert.Error(t, os.encryptOrder(sampleOrder()))
}
