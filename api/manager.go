package api

import (
	"lumi_noir_server/api/admin"
	"lumi_noir_server/api/auth"
	"lumi_noir_server/api/cart"
	"lumi_noir_server/api/content"
	"lumi_noir_server/api/health"
	"lumi_noir_server/api/middleware"
	"lumi_noir_server/api/orders"
	"lumi_noir_server/api/products"
	"lumi_noir_server/services"
	"lumi_noir_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes *products.ProductRoutesManager
	healthRoutes  *health.HealthRoutesManager
	authRoutes    *auth.AuthRoutesManager
	adminRoutes   *admin.AdminRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	cartRoutes    *cart.CartRoutesManager
	contentRoutes *content.ContentRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		productRoutes: products.NewProductRoutesManager(logger, sm.ProductService, sm.StorageService),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
		authRoutes:    auth.NewAuthRoutesManager(logger, cfg, sm.AuthService, sm.CacheService, mw),
		adminRoutes:   admin.NewAdminRoutesManager(logger, sm.ProductService, sm.OrderService, sm.ContentService, sm.StorageService, mw),
		orderRoutes:   orders.NewOrderRoutesManager(logger, cfg, sm.OrderService, sm.CartService),
		cartRoutes:    cart.NewCartRoutesManager(logger, cfg, sm.CartService, sm.ProductService, sm.StorageService),
		contentRoutes: content.NewContentRoutesManager(logger, sm.ContentService, sm.StorageService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.contentRoutes.RegisterRoutes(r)
}
