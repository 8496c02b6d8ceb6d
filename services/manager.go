package services

import (
	"lumi_noir_server/database"
	"lumi_noir_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService    *AuthService
	EmailService   *EmailService
	CacheService   *CacheService
	HealthService  *HealthService
	ProductService *ProductService
	OrderService   *OrderService
	CartService    *CartService
	ContentService *ContentService
	StorageService *StorageService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) (*ServiceManager, error) {
	storageService, err := NewStorageService(logger, cfg)
	if err != nil {
		return nil, err
	}

	cacheService := NewCacheService(logger, cfg)
	authService := NewAuthService(cfg, logger, db, cacheService)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	productService := NewProductService(logger, db, cacheService)
	orderService := NewOrderService(logger, cfg, db, productService, emailService)
	cartService := NewCartService(logger, cacheService)
	contentService := NewContentService(logger, cfg, db, cacheService, storageService)

	return &ServiceManager{
		AuthService:    authService,
		EmailService:   emailService,
		CacheService:   cacheService,
		HealthService:  healthService,
		ProductService: productService,
		OrderService:   orderService,
		CartService:    cartService,
		ContentService: contentService,
		StorageService: storageService,
	}, nil
}
