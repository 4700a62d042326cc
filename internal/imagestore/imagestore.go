// Package imagestore stores recipe images in an S3-compatible bucket.
package imagestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/oklog/ulid/v2"

	"github.com/matt-dz/mealplan/internal/config"
)

const coverDir = "covers"

var ErrForeignURL = errors.New("url does not belong to this store")

type Store interface {
	// PutRecipeCover uploads data as the cover image of recipeID and returns
	// its public URL.
	PutRecipeCover(ctx context.Context, recipeID int64, suffix, contentType string, data []byte) (string, error)
	// DeleteURL removes the object behind a URL returned by PutRecipeCover.
	DeleteURL(ctx context.Context, rawURL string) error
}

// objectClient is the subset of *minio.Client used by the store.
type objectClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type ImageStore struct {
	client  objectClient
	bucket  string
	baseURL string
}

var _ Store = (*ImageStore)(nil)

func New(conf config.ObjectStore) (*ImageStore, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	return newWithClient(client, conf), nil
}

func newWithClient(client objectClient, conf config.ObjectStore) *ImageStore {
	return &ImageStore{
		client:  client,
		bucket:  conf.Bucket,
		baseURL: baseURL(conf),
	}
}

// baseURL is the prefix every object URL starts with. A configured public
// URL wins over the path-style endpoint URL.
func baseURL(conf config.ObjectStore) string {
	if conf.PublicURL != "" {
		return strings.TrimRight(conf.PublicURL, "/")
	}
	scheme := "http"
	if conf.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, conf.Endpoint, conf.Bucket)
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", s.bucket, err)
	}
	return nil
}

func (s *ImageStore) PutRecipeCover(
	ctx context.Context, recipeID int64, suffix, contentType string, data []byte,
) (string, error) {
	key := coverImageKey(recipeID, ulid.Make().String(), suffix)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("uploading %q: %w", key, err)
	}
	return s.objectURL(key), nil
}

func (s *ImageStore) DeleteURL(ctx context.Context, rawURL string) error {
	key, err := s.keyFromURL(rawURL)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

func (s *ImageStore) objectURL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}

func (s *ImageStore) keyFromURL(rawURL string) (string, error) {
	if _, err := url.Parse(rawURL); err != nil {
		return "", fmt.Errorf("parsing url: %w", err)
	}
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", fmt.Errorf("%q: %w", rawURL, ErrForeignURL)
	}
	key := strings.Trim(strings.TrimPrefix(rawURL, prefix), "/")
	if key == "" {
		return "", fmt.Errorf("%q: %w", rawURL, ErrForeignURL)
	}
	return key, nil
}

func coverImageKey(recipeID int64, id, suffix string) string {
	return path.Join(coverDir, strconv.FormatInt(recipeID, 10), id+suffix)
}
