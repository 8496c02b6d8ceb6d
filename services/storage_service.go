package services

import (
	"context"
	"fmt"
	"io"
	"lumi_noir_server/structs"
	"net/url"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// ObjectStorage is the bucket surface the content and product flows depend
// on. StorageService implements it against GCS; tests substitute an
// in-memory implementation.
type ObjectStorage interface {
	Upload(ctx context.Context, objectPath, contentType string, body io.Reader) error
	Remove(ctx context.Context, objectPath string) error
}

// StorageService manages objects in the images bucket. Product images and
// site assets share one bucket under different prefixes.
type StorageService struct {
	logger *gecho.Logger
	config *structs.Config
	client *storage.Client
}

func NewStorageService(logger *gecho.Logger, cfg *structs.Config) (*StorageService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var opts []option.ClientOption
	if cfg.Storage.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Storage.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	logger.Info("Connected to storage", "bucket", cfg.Storage.Bucket)

	return &StorageService{
		logger: logger,
		config: cfg,
		client: client,
	}, nil
}

func (ss *StorageService) Close() error {
	return ss.client.Close()
}

// ProductImagePath builds the object path for a new product image. A
// millisecond timestamp prefix keeps repeated uploads of the same filename
// from colliding.
func ProductImagePath(productID uuid.UUID, filename string, now time.Time) string {
	return fmt.Sprintf("products/%s/%d-%s", productID.String(), now.UnixMilli(), sanitizeFilename(filename))
}

// HeroImagePath builds the object path for the site hero image.
func HeroImagePath(ext string, now time.Time) string {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("site/hero/%d-hero.%s", now.UnixMilli(), ext)
}

func sanitizeFilename(filename string) string {
	filename = path.Base(filename)
	filename = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, filename)
	if filename == "" || filename == "." {
		filename = "upload"
	}
	return filename
}

// Upload streams an object into the bucket at the given path.
func (ss *StorageService) Upload(ctx context.Context, objectPath, contentType string, body io.Reader) error {
	writer := ss.client.Bucket(ss.config.Storage.Bucket).Object(objectPath).NewWriter(ctx)
	writer.ContentType = contentType
	writer.CacheControl = "public, max-age=31536000"

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write object %s: %w", objectPath, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %s: %w", objectPath, err)
	}

	ss.logger.Debug("Uploaded object", "path", objectPath, "content_type", contentType)
	return nil
}

// Remove deletes an object. A missing object is not an error; removal is
// used for cleanup and the end state is the same.
func (ss *StorageService) Remove(ctx context.Context, objectPath string) error {
	err := ss.client.Bucket(ss.config.Storage.Bucket).Object(objectPath).Delete(ctx)
	if err != nil && err != storage.ErrObjectNotExist {
		return fmt.Errorf("failed to delete object %s: %w", objectPath, err)
	}
	return nil
}

// PublicURL derives the public URL for a stored object path. Absolute URLs
// and root-relative paths pass through untouched so externally hosted images
// keep working.
func (ss *StorageService) PublicURL(objectPath string) string {
	return PublicObjectURL(ss.config.Storage.PublicBaseURL, ss.config.Storage.Bucket, objectPath)
}

// PublicObjectURL encodes each path segment individually so slashes keep
// their meaning while filenames with spaces or unicode stay valid URLs.
func PublicObjectURL(baseURL, bucket, objectPath string) string {
	if objectPath == "" {
		return ""
	}
	if strings.HasPrefix(objectPath, "http") || strings.HasPrefix(objectPath, "/") {
		return objectPath
	}

	segments := strings.Split(objectPath, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(baseURL, "/"), bucket, strings.Join(segments, "/"))
}
