package products

import (
	"lumi_noir_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	storageService *services.StorageService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		storageService: storageService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products", prm.FetchPublishedProducts)
	r.Get("/products/sale", prm.FetchSaleProducts)
	r.Get("/products/{id}", prm.FetchProductByID)
}
