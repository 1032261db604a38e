package kvdb

import (
	"context"
	"time"
)

type Client interface {
	Init() error
	Close() error
	GetConf() *Conf

	//---- Key Ops ----

	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) (int64, error)
	// Expire sets/updates expiration for a key
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) // found & updated, err

	//---- Single-value Ops ----

	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error) // val, found, err

	//---- Hash Ops ----

	SetFields(ctx context.Context, key string, fields map[string]any) error
	GetField(ctx context.Context, key string, field string) (string, bool, error) // val, found, err
	GetAllFields(ctx context.Context, key string) (map[string]string, error)
}
