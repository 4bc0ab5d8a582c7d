package facades

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sbilibin2017/rdrx/internal/logger"
)

// objectAPI is the part of *minio.Client used by ObjectStore.
type objectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// ObjectStore stores uploaded files in an S3-compatible bucket.
type ObjectStore struct {
	client    objectAPI
	bucket    string
	publicURL string
}

// NewMinioClient connects to an S3-compatible endpoint.
func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
}

// NewObjectStore returns a store writing to bucket. Public URLs are built
// from publicURL, which should point at the bucket root.
func NewObjectStore(client objectAPI, bucket, publicURL string) *ObjectStore {
	return &ObjectStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Put uploads body under key and returns its public URL.
func (s *ObjectStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})

	logger.Log.Infow("object put",
		"bucket", s.bucket,
		"key", key,
		"size", info.Size,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// RemovePrefix deletes every object whose key starts with prefix.
// It keeps going after a failed removal and returns all errors joined.
func (s *ObjectStore) RemovePrefix(ctx context.Context, prefix string) error {
	var errs []error
	removed := 0

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			errs = append(errs, obj.Err)
			continue
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}

	err := errors.Join(errs...)
	logger.Log.Infow("objects removed",
		"bucket", s.bucket,
		"prefix", prefix,
		"removed", removed,
		"error", err,
	)
	return err
}

func (s *ObjectStore) PublicURL(key string) string {
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}
