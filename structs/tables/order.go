package tables

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddress is stored as a jsonb column on the order row.
type ShippingAddress struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Order is immutable after creation; there is no cancellation or update flow.
type Order struct {
	tableName struct{}  `bun:"table:orders,alias:o"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`

	CustomerName string `bun:"customer_name,notnull" json:"customer_name" validate:"required,min=2,max=100"`
	Email        string `bun:"email,notnull" json:"email" validate:"required,email"`
	Phone        string `bun:"phone" json:"phone,omitempty" validate:"omitempty,max=20"`

	ShippingAddress ShippingAddress `bun:"shipping_address,type:jsonb" json:"shipping_address"`

	TotalCents int64  `bun:"total_cents,notnull" json:"total_cents" validate:"gte=0"` // computed server-side, minor units
	Currency   string `bun:"currency,notnull,default:'EUR'" json:"currency"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`

	Items []OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

// OrderItem carries a frozen snapshot of title and unit price taken at order
// time, so later product edits or deletions never change historical orders.
type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderID   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`
	ProductID uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`

	TitleSnapshot      string `bun:"title_snapshot,notnull" json:"title_snapshot"`
	PriceCentsSnapshot int64  `bun:"price_cents_snapshot,notnull" json:"price_cents_snapshot"`
	Quantity           int    `bun:"quantity,notnull" json:"quantity" validate:"required,min=1"`
}
