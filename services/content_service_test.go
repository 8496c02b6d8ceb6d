package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"lumi_noir_server/locale"
	"strings"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveContentFallbackChain(t *testing.T) {
	entries := map[string]string{
		"en": "About us in English",
		"fr": "À propos en français",
	}

	assert.Equal(t, "À propos en français", ResolveContent(entries, locale.French, "default"))

	// Missing language falls back to English
	assert.Equal(t, "About us in English", ResolveContent(entries, locale.Arabic, "default"))

	// Empty values are treated as missing
	entries["ar"] = ""
	assert.Equal(t, "About us in English", ResolveContent(entries, locale.Arabic, "default"))

	// No usable entry at all yields the default
	assert.Equal(t, "default", ResolveContent(map[string]string{}, locale.English, "default"))
}

// memoryStorage is an in-memory ObjectStorage that records the order of
// bucket operations.
type memoryStorage struct {
	objects map[string]string
	ops     []string

	uploadErr error
	removeErr error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: map[string]string{}}
}

func (ms *memoryStorage) Upload(_ context.Context, objectPath, _ string, body io.Reader) error {
	ms.ops = append(ms.ops, "upload "+objectPath)
	if ms.uploadErr != nil {
		return ms.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	ms.objects[objectPath] = string(data)
	return nil
}

func (ms *memoryStorage) Remove(_ context.Context, objectPath string) error {
	ms.ops = append(ms.ops, "remove "+objectPath)
	if ms.removeErr != nil {
		return ms.removeErr
	}
	delete(ms.objects, objectPath)
	return nil
}

func contentServiceWithStorage(storage ObjectStorage) *ContentService {
	return NewContentService(gecho.NewDefaultLogger(), nil, nil, nil, storage)
}

func TestSwapHeroObjectReplacesOldObject(t *testing.T) {
	storage := newMemoryStorage()
	storage.objects["site/hero/1-hero.jpg"] = "old"
	cs := contentServiceWithStorage(storage)

	saved := false
	err := cs.swapHeroObject(context.Background(),
		"site/hero/1-hero.jpg", "site/hero/2-hero.jpg",
		"image/jpeg", strings.NewReader("new"),
		func(context.Context) error {
			saved = true
			return nil
		},
	)
	require.NoError(t, err)
	assert.True(t, saved)

	// Old object is gone before the new one lands; exactly one hero remains
	assert.Equal(t, []string{"remove site/hero/1-hero.jpg", "upload site/hero/2-hero.jpg"}, storage.ops)
	assert.Equal(t, map[string]string{"site/hero/2-hero.jpg": "new"}, storage.objects)
}

func TestSwapHeroObjectSkipsRemoveWhenNoPrevious(t *testing.T) {
	storage := newMemoryStorage()
	cs := contentServiceWithStorage(storage)

	err := cs.swapHeroObject(context.Background(),
		"", "site/hero/1-hero.png",
		"image/png", strings.NewReader("first"),
		func(context.Context) error { return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"upload site/hero/1-hero.png"}, storage.ops)
}

func TestSwapHeroObjectRollsBackOnSaveFailure(t *testing.T) {
	storage := newMemoryStorage()
	cs := contentServiceWithStorage(storage)

	saveErr := errors.New("database unavailable")
	err := cs.swapHeroObject(context.Background(),
		"", "site/hero/3-hero.jpg",
		"image/jpeg", strings.NewReader("new"),
		func(context.Context) error { return saveErr },
	)
	assert.ErrorIs(t, err, saveErr)

	// The orphan object is removed again when the path cannot be persisted
	assert.Equal(t, []string{"upload site/hero/3-hero.jpg", "remove site/hero/3-hero.jpg"}, storage.ops)
	assert.Empty(t, storage.objects)
}

func TestSwapHeroObjectToleratesOldRemovalFailure(t *testing.T) {
	storage := newMemoryStorage()
	storage.objects["site/hero/1-hero.jpg"] = "old"
	storage.removeErr = fmt.Errorf("transient bucket error")
	cs := contentServiceWithStorage(storage)

	err := cs.swapHeroObject(context.Background(),
		"site/hero/1-hero.jpg", "site/hero/2-hero.jpg",
		"image/jpeg", strings.NewReader("new"),
		func(context.Context) error { return nil },
	)
	require.NoError(t, err)
	assert.Contains(t, storage.objects, "site/hero/2-hero.jpg")
}
