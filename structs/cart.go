package structs

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=99"`
}

// Quantity 0 removes the line, mirroring the storefront stepper.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0,max=99"`
}
