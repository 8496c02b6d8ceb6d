package content

import (
	"lumi_noir_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ContentRoutesManager struct {
	logger         *gecho.Logger
	contentService *services.ContentService
	storageService *services.StorageService
}

func NewContentRoutesManager(
	logger *gecho.Logger,
	contentService *services.ContentService,
	storageService *services.StorageService,
) *ContentRoutesManager {
	return &ContentRoutesManager{
		logger:         logger,
		contentService: contentService,
		storageService: storageService,
	}
}

func (crm *ContentRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/content/hero-image", crm.FetchHeroImage)
	r.Get("/content/{key}", crm.FetchContent)
	r.Get("/i18n/{lang}", crm.FetchDictionary)
}
