package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sitetools/ops-core/storages"
)

const StorageType = "s3"

func Register() {
	storages.RegisterFactory(StorageType, func(conf *storages.Conf) storages.Store {
		return &Store{conf: conf}
	})
}

// Store - S3-compatible object storage (AWS S3, MinIO, etc).
type Store struct {
	conf   *storages.Conf
	client *minio.Client
}

func (s *Store) Init() error {
	client, err := minio.New(s.conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s.conf.AccessKey, s.conf.SecretKey, ""),
		Secure: s.conf.UseSSL,
		Region: s.conf.Region,
	})
	if err != nil {
		return fmt.Errorf("s3 client init: %w", err)
	}
	s.client = client
	return nil
}

func (s *Store) ListObjects(ctx context.Context, bucketID string) ([]storages.ObjectRef, error) {
	bucket := s.conf.BucketName(bucketID)
	refs := make([]storages.ObjectRef, 0)
	for info := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("list %s: %w", bucket, info.Err)
		}
		refs = append(refs, storages.ObjectRef{
			Name:      info.Key,
			Size:      info.Size,
			CreatedAt: info.LastModified,
		})
	}
	return refs, nil
}

func (s *Store) GetSignedURL(ctx context.Context, bucketID string, objectName string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = storages.DefaultSignTTL
	}
	bucket := s.conf.BucketName(bucketID)
	u, err := s.client.PresignedGetObject(ctx, bucket, objectName, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("presign %s/%s: %w", bucket, objectName, err)
	}
	return u.String(), nil
}

func (s *Store) Upload(ctx context.Context, bucketID string, objectName string, data []byte, contentType string) error {
	bucket := s.conf.BucketName(bucketID)
	_, err := s.client.PutObject(
		ctx, bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", bucket, objectName, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, bucketID string, objectName string) error {
	bucket := s.conf.BucketName(bucketID)
	err := s.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("remove %s/%s: %w", bucket, objectName, err)
	}
	return nil
}

func (s *Store) Download(ctx context.Context, bucketID string, objectName string) ([]byte, error) {
	bucket := s.conf.BucketName(bucketID)
	obj, err := s.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", bucket, objectName, err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", bucket, objectName, err)
	}
	return data, nil
}
