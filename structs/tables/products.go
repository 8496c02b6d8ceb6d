package tables

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	tableName      struct{}  `bun:"table:products,alias:p"`
	ID             uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Title          string    `bun:"title,notnull" json:"title"`
	Description    string    `bun:"description,notnull" json:"description"`
	PriceCents     int64     `bun:"price_cents,notnull" json:"price_cents"` // minor currency units, never floats
	SalePriceCents *int64    `bun:"sale_price_cents" json:"sale_price_cents,omitempty"`
	Currency       string    `bun:"currency,notnull,default:'EUR'" json:"currency"`
	IsPublished    bool      `bun:"is_published,notnull" json:"is_published"`
	CoverImagePath *string   `bun:"cover_image_path" json:"cover_image_path,omitempty"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Images []ProductImage `bun:"rel:has-many,join:id=product_id" json:"images,omitempty"`
}

// OnSale reports whether the product carries a sale price below the list price.
func (p *Product) OnSale() bool {
	return p.SalePriceCents != nil && *p.SalePriceCents < p.PriceCents
}

// EffectivePriceCents is the price a new order line snapshots.
func (p *Product) EffectivePriceCents() int64 {
	if p.OnSale() {
		return *p.SalePriceCents
	}
	return p.PriceCents
}

// ProductImage represents one stored image of a product.
// SortOrder determines display sequence.
type ProductImage struct {
	tableName struct{}  `bun:"table:product_images,alias:pi"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID uuid.UUID `bun:"product_id,type:uuid,notnull" json:"product_id"`
	Path      string    `bun:"path,notnull" json:"path"` // object path inside the images bucket
	SortOrder int       `bun:"sort_order,notnull" json:"sort_order"`
}
