package auth

import (
	"lumi_noir_server/api/middleware"
	"lumi_noir_server/services"
	"lumi_noir_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	authService  *services.AuthService
	cacheService *services.CacheService
	mw           *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	authService *services.AuthService,
	cacheService *services.CacheService,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:       logger,
		cfg:          cfg,
		authService:  authService,
		cacheService: cacheService,
		mw:           mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		// CSRF token endpoint (must be called before the mutating routes)
		r.Get("/csrf", arm.HandleCSRF)

		r.Group(func(r chi.Router) {
			r.Use(arm.mw.CSRFMiddleware())
			r.Post("/register", arm.HandleRegister)
			r.Post("/login", arm.HandleLogin)
			r.Post("/logout", arm.HandleLogout)
			r.Post("/refresh", arm.HandleRefresh)
		})

		r.Get("/me", arm.HandleMe)
	})
}
