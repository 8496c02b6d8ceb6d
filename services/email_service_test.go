package services

import (
	"lumi_noir_server/structs/tables"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderConfirmationHTMLEscapesCustomerValues(t *testing.T) {
	order := &tables.Order{
		ID:           uuid.New(),
		CustomerName: `<script>alert("x")</script>`,
		Currency:     "EUR",
		TotalCents:   7999,
	}
	items := []tables.OrderItem{
		{TitleSnapshot: `Abaya <img src=x onerror="steal()">`, PriceCentsSnapshot: 7999, Quantity: 1},
	}

	body := orderConfirmationHTML(order, items)

	assert.NotContains(t, body, `<script>`)
	assert.NotContains(t, body, `<img src=x`)
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "Abaya &lt;img")
	assert.Contains(t, body, order.ID.String())
}

func TestOrderConfirmationHTMLListsEveryItem(t *testing.T) {
	order := &tables.Order{ID: uuid.New(), CustomerName: "Amira", Currency: "EUR", TotalCents: 12499}
	items := []tables.OrderItem{
		{TitleSnapshot: "Classic Abaya", PriceCentsSnapshot: 7999, Quantity: 1},
		{TitleSnapshot: "Silk Scarf", PriceCentsSnapshot: 4500, Quantity: 1},
	}

	body := orderConfirmationHTML(order, items)

	assert.Contains(t, body, "Classic Abaya")
	assert.Contains(t, body, "Silk Scarf")
	assert.Contains(t, body, "Thank you for your order, Amira")
}
