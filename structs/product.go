package structs

// CreateProductRequest carries the non-file fields of the admin create form.
// Prices arrive as decimal strings ("79.99") and are converted to minor units
// without floating point.
type CreateProductRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"omitempty,max=5000"`
	Price       string  `json:"price" validate:"required"`
	SalePrice   *string `json:"sale_price,omitempty"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	IsPublished bool    `json:"is_published"`
}

// UpdateProductRequest updates only the provided fields. An empty sale price
// string clears the sale.
type UpdateProductRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       *string `json:"price,omitempty"`
	SalePrice   *string `json:"sale_price,omitempty"`
	Currency    *string `json:"currency,omitempty" validate:"omitempty,len=3"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

// SetCoverRequest selects an existing image path as cover; an empty path
// clears the cover.
type SetCoverRequest struct {
	Path string `json:"path"`
}
