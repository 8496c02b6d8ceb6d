package structs

// CheckoutForm is the shipping/contact form submitted at checkout.
type CheckoutForm struct {
	CustomerName string `json:"customer_name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
	AddressLine1 string `json:"address_line1" validate:"required,min=2,max=200"`
	City         string `json:"city" validate:"omitempty,max=100"`
	Zip          string `json:"zip" validate:"omitempty,max=20"`
	Country      string `json:"country" validate:"omitempty,max=2"`
}

// CheckoutItem references a product by id only; price and title are always
// re-read from the catalog server-side.
type CheckoutItem struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type OrderRequest struct {
	Form  CheckoutForm   `json:"form"`
	Items []CheckoutItem `json:"items" validate:"dive"`
}

type OrderResponse struct {
	OrderID string `json:"orderId"`
}
