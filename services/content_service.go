package services

import (
	"context"
	"fmt"
	"io"
	"lumi_noir_server/database"
	"lumi_noir_server/lib"
	"lumi_noir_server/locale"
	"lumi_noir_server/structs"
	"lumi_noir_server/structs/tables"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/MonkyMars/gecho"
)

// ContentService manages translated site content and the hero image.
type ContentService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	db             *database.DB
	cacheService   *CacheService
	storageService ObjectStorage
}

func NewContentService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, cacheService *CacheService, storageService ObjectStorage) *ContentService {
	return &ContentService{
		logger:         logger,
		cfg:            cfg,
		db:             db,
		cacheService:   cacheService,
		storageService: storageService,
	}
}

// GetEntries returns all language rows for a content key as a lang -> content
// map. Results are served from cache until an admin save invalidates the key.
func (cs *ContentService) GetEntries(ctx context.Context, key string) (map[string]string, error) {
	if cached, err := cs.cacheService.GetContentEntries(key); err == nil && cached != nil {
		return cached, nil
	}

	rows, err := database.Query[tables.SiteContent](cs.db).
		Where("key", key).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	entries := make(map[string]string, len(rows))
	for _, row := range rows {
		entries[row.Lang] = row.Content
	}

	if err := cs.cacheService.SetContentEntries(key, entries); err != nil {
		cs.logger.Warn("Failed to cache content entries", gecho.Field("error", err), gecho.Field("key", key))
	}
	return entries, nil
}

// GetContent resolves a content key for a language, falling back per
// ResolveContent.
func (cs *ContentService) GetContent(ctx context.Context, key string, lang locale.Language) (*structs.ContentResponse, error) {
	entries, err := cs.GetEntries(ctx, key)
	if err != nil {
		return nil, err
	}

	fallback := ""
	if key == tables.ContentKeyAbout {
		fallback = locale.T(lang, "about.default")
	}

	return &structs.ContentResponse{
		Key:      key,
		Lang:     string(lang),
		Resolved: ResolveContent(entries, lang, fallback),
		Entries:  entries,
	}, nil
}

// ResolveContent picks the best value for a language: the language itself,
// then English, then the provided default.
func ResolveContent(entries map[string]string, lang locale.Language, fallback string) string {
	if value, ok := entries[string(lang)]; ok && value != "" {
		return value
	}
	if value, ok := entries[string(locale.English)]; ok && value != "" {
		return value
	}
	return fallback
}

// UpsertEntries saves all submitted languages for a key in a single batched
// statement, so one admin save cannot leave the key half written.
func (cs *ContentService) UpsertEntries(ctx context.Context, key string, entries map[string]string) error {
	if len(entries) == 0 {
		return fmt.Errorf("no entries to save")
	}

	now := time.Now()
	rows := make([]tables.SiteContent, 0, len(entries))
	for lang, content := range entries {
		if !locale.IsSupported(lang) {
			return fmt.Errorf("unsupported language: %s", lang)
		}
		rows = append(rows, tables.SiteContent{
			Key:       key,
			Lang:      lang,
			Content:   content,
			UpdatedAt: now,
		})
	}

	if _, err := database.BulkUpsert(cs.db, ctx, rows, "key, lang", "content", "updated_at"); err != nil {
		cs.logger.Error("Failed to upsert site content", gecho.Field("error", err), gecho.Field("key", key))
		return lib.MapPgError(err)
	}

	if err := cs.cacheService.InvalidateContentCache(key); err != nil {
		cs.logger.Warn("Failed to invalidate content cache", gecho.Field("error", err), gecho.Field("key", key))
	}

	cs.logger.Info("Site content saved", gecho.Field("key", key), gecho.Field("languages", len(rows)))
	return nil
}

// HeroImagePath returns the stored hero image object path, empty when unset.
func (cs *ContentService) HeroImagePath(ctx context.Context) (string, error) {
	entries, err := cs.GetEntries(ctx, tables.ContentKeyHeroImage)
	if err != nil {
		return "", err
	}
	return ResolveContent(entries, locale.English, ""), nil
}

// SetHeroImage uploads a new hero image and records its path. The previous
// object is deleted first so the bucket never accumulates stale heroes.
func (cs *ContentService) SetHeroImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	oldPath, err := cs.HeroImagePath(ctx)
	if err != nil {
		return "", err
	}

	newPath := HeroImagePath(filepath.Ext(header.Filename), time.Now())
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	err = cs.swapHeroObject(ctx, oldPath, newPath, contentType, file, func(ctx context.Context) error {
		return cs.UpsertEntries(ctx, tables.ContentKeyHeroImage, map[string]string{
			string(locale.English): newPath,
		})
	})
	if err != nil {
		return "", err
	}

	cs.logger.Info("Hero image updated", gecho.Field("path", newPath))
	return newPath, nil
}

// swapHeroObject replaces the hero object in the bucket: remove the old
// object, upload the new one, then persist the path via save. If save fails
// the fresh object is removed again so the bucket stays consistent with the
// database.
func (cs *ContentService) swapHeroObject(ctx context.Context, oldPath, newPath, contentType string, body io.Reader, save func(context.Context) error) error {
	if oldPath != "" {
		if err := cs.storageService.Remove(ctx, oldPath); err != nil {
			cs.logger.Warn("Failed to remove previous hero image", gecho.Field("error", err), gecho.Field("path", oldPath))
		}
	}

	if err := cs.storageService.Upload(ctx, newPath, contentType, body); err != nil {
		return err
	}

	if err := save(ctx); err != nil {
		if cleanupErr := cs.storageService.Remove(ctx, newPath); cleanupErr != nil {
			cs.logger.Warn("Failed to clean up hero image after save failure", gecho.Field("error", cleanupErr), gecho.Field("path", newPath))
		}
		return err
	}
	return nil
}

// RemoveHeroImage deletes the hero object and clears the content row.
func (cs *ContentService) RemoveHeroImage(ctx context.Context) error {
	path, err := cs.HeroImagePath(ctx)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	if err := cs.storageService.Remove(ctx, path); err != nil {
		return err
	}

	return cs.UpsertEntries(ctx, tables.ContentKeyHeroImage, map[string]string{
		string(locale.English): "",
	})
}
