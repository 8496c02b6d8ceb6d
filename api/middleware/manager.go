package middleware

import (
	"lumi_noir_server/database"
	"lumi_noir_server/services"
	"lumi_noir_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	db           *database.DB
	authService  *services.AuthService
	cacheService *services.CacheService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, db *database.DB, sm *services.ServiceManager) *Middleware {
	return &Middleware{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		authService:  sm.AuthService,
		cacheService: sm.CacheService,
	}
}
