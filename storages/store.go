package storages

import (
	"context"
	"errors"
	"time"
)

const (
	// DefaultSignTTL - lifetime of signed object URLs.
	DefaultSignTTL = 3600 * time.Second
	// RefreshCycle - leases re-sign well before expiry so a URL never goes
	// stale mid-session.
	RefreshCycle = 2700 * time.Second
)

type ObjectRef struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Store - narrow object-storage contract consumed by the document
// assembler and the upload/listing handlers.
type Store interface {
	Init() error
	ListObjects(ctx context.Context, bucketID string) ([]ObjectRef, error)
	GetSignedURL(ctx context.Context, bucketID string, objectName string, ttl time.Duration) (string, error)
	Upload(ctx context.Context, bucketID string, objectName string, data []byte, contentType string) error
	Remove(ctx context.Context, bucketID string, objectName string) error
	// Download fetches whole object bytes, e.g. the organization logo.
	Download(ctx context.Context, bucketID string, objectName string) ([]byte, error)
}

var ErrUnsupportedStorageType = errors.New("unsupported object storage type")

// Factory registry, same pattern as sqldb clients.
type StoreFactory func(conf *Conf) Store

var registry = map[string]StoreFactory{}

func RegisterFactory(storageType string, factory StoreFactory) {
	registry[storageType] = factory
}

func New(conf *Conf) (Store, error) {
	factory, ok := registry[conf.Type]
	if !ok {
		return nil, ErrUnsupportedStorageType
	}
	return factory(conf), nil
}
