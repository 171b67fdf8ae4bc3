package gcs

import (
	"context"
	"fmt"
	"path"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	storageapi "google.golang.org/api/storage/v1"

	"github.com/mamadbah2/fishing-tracker/internal/config"
)

// ObjectInfo identifies one stored object.
type ObjectInfo struct {
	Path string
	Name string
}

// BlobStore defines the object storage operations supported by the adapter.
type BlobStore interface {
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	Delete(ctx context.Context, objectPath string) error
}

// CloudStorage implements the BlobStore interface using the Google Cloud
// Storage JSON API. The bucket is the one behind the app's photo uploads.
type CloudStorage struct {
	service *storageapi.Service
	bucket  string
	logger  *zap.Logger
}

// NewCloudStorage builds a Cloud Storage backed blob store instance.
func NewCloudStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (BlobStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := storageapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(storageapi.DevstorageReadWriteScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}

	return &CloudStorage{
		service: service,
		bucket:  cfg.Bucket,
		logger:  logger,
	}, nil
}

// List returns every object under the given prefix. An empty prefix lists
// the whole bucket.
func (s *CloudStorage) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo

	call := s.service.Objects.List(s.bucket).Prefix(prefix).Context(ctx)
	for {
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list objects under %q: %w", prefix, err)
		}
		for _, obj := range resp.Items {
			objects = append(objects, ObjectInfo{Path: obj.Name, Name: path.Base(obj.Name)})
		}
		if resp.NextPageToken == "" {
			break
		}
		call = call.PageToken(resp.NextPageToken)
	}

	s.logger.Debug("listed storage objects", zap.String("prefix", prefix), zap.Int("count", len(objects)))
	return objects, nil
}

// Delete removes a single object.
func (s *CloudStorage) Delete(ctx context.Context, objectPath string) error {
	if err := s.service.Objects.Delete(s.bucket, objectPath).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete object %s: %w", objectPath, err)
	}
	return nil
}
