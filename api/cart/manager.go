package cart

import (
	"lumi_noir_server/services"
	"lumi_noir_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	cartService    *services.CartService
	productService *services.ProductService
	storageService *services.StorageService
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	cartService *services.CartService,
	productService *services.ProductService,
	storageService *services.StorageService,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:         logger,
		cfg:            cfg,
		cartService:    cartService,
		productService: productService,
		storageService: storageService,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/cart", crm.FetchCart)
	r.Post("/cart/items", crm.AddItem)
	r.Put("/cart/items/{productId}", crm.UpdateItemQuantity)
	r.Delete("/cart/items/{productId}", crm.RemoveItem)
	r.Delete("/cart", crm.ClearCart)
}
