package admin

import (
	"lumi_noir_server/api/middleware"
	"lumi_noir_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	orderService   *services.OrderService
	contentService *services.ContentService
	storageService *services.StorageService
	mw             *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	orderService *services.OrderService,
	contentService *services.ContentService,
	storageService *services.StorageService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		productService: productService,
		orderService:   orderService,
		contentService: contentService,
		storageService: storageService,
		mw:             mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.AdminAuthMiddleware)
		r.Use(arm.mw.CSRFMiddleware())

		// Product management
		r.Get("/products", arm.ListAllProducts)
		r.Post("/products", arm.CreateProduct)
		r.Put("/products/{id}", arm.UpdateProduct)
		r.Delete("/products/{id}", arm.DeleteProduct)

		// Product images
		r.Post("/products/{id}/images", arm.AddProductImage)
		r.Delete("/products/{id}/images/{imageId}", arm.RemoveProductImage)
		r.Put("/products/{id}/cover", arm.SetProductCover)

		// Site content and hero image
		r.Put("/content/{key}", arm.UpsertContent)
		r.Post("/content/hero-image", arm.UploadHeroImage)
		r.Delete("/content/hero-image", arm.DeleteHeroImage)

		// Orders
		r.Get("/orders", arm.ListOrders)
		r.Get("/orders/{id}", arm.GetOrderDetails)
	})
}
