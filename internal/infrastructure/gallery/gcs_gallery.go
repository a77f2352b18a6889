package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"mitsumori_tsuikyaku/internal/config"
	"mitsumori_tsuikyaku/internal/infrastructure/logger"
	"mitsumori_tsuikyaku/internal/usecase/interfaces"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSGallery stores estimate gallery images in one bucket. Objects are
// public-read through GalleryPublicBaseURL or storage.googleapis.com.
type GCSGallery struct {
	client     *storage.Client
	bucket     string
	publicBase string
	log        *logger.Logger
}

var _ interfaces.IGalleryStorage = (*GCSGallery)(nil)

// NewGCSGallery connects to GCS, or to the emulator when
// STORAGE_EMULATOR_HOST is set.
func NewGCSGallery(ctx context.Context, cfg config.Config, log *logger.Logger) (*GCSGallery, error) {
	if cfg.GalleryBucket == "" {
		return nil, fmt.Errorf("missing env var GALLERY_BUCKET")
	}

	var opts []option.ClientOption
	if cfg.StorageEmulatorHost != "" {
		opts = append(opts, option.WithoutAuthentication(), option.WithEndpoint(strings.TrimRight(cfg.StorageEmulatorHost, "/")+"/storage/v1/"))
	} else {
		opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	publicBase := strings.TrimRight(cfg.GalleryPublicBaseURL, "/")
	if publicBase == "" {
		publicBase = "https://storage.googleapis.com/" + cfg.GalleryBucket
	}
	return &GCSGallery{
		client:     client,
		bucket:     cfg.GalleryBucket,
		publicBase: publicBase,
		log:        log.With("service", "GCSGallery"),
	}, nil
}

func (g *GCSGallery) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if w.ContentType == "" {
		w.ContentType = contentTypeForKey(key)
	}
	w.CacheControl = "public, max-age=31536000"
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return g.PublicURL(key), nil
}

// Delete treats a missing object as already removed.
func (g *GCSGallery) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	err := g.client.Bucket(g.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete GCS object %q: %w", key, err)
	}
	return nil
}

func (g *GCSGallery) PublicURL(key string) string {
	return g.publicBase + "/" + key
}

func (g *GCSGallery) Close() error {
	return g.client.Close()
}

func contentTypeForKey(key string) string {
	s := strings.ToLower(key)
	switch {
	case strings.HasSuffix(s, ".png"):
		return "image/png"
	case strings.HasSuffix(s, ".webp"):
		return "image/webp"
	case strings.HasSuffix(s, ".gif"):
		return "image/gif"
	case strings.HasSuffix(s, ".heic"):
		return "image/heic"
	default:
		return "image/jpeg"
	}
}
