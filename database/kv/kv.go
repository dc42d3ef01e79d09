// Package kv defines the durable key-value medium the booking store persists
// through, plus its redis, file and in-memory drivers.
package kv

import (
	"context"
	"errors"
)

// Driver identifies a KV backend.
type Driver string

const (
	// DriverRedis is the redis-backed driver.
	DriverRedis Driver = "redis"
	// DriverFile is the local filesystem driver.
	DriverFile Driver = "file"
	// DriverMemory is the in-memory test driver.
	DriverMemory Driver = "memory"
)

// ErrNotFound indicates the key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store is the persistence contract: a flat string keyspace surviving process
// restarts (the memory driver excepted). Get returns ErrNotFound for absent
// keys; Remove of an absent key is a no-op.
type Store interface {
	Driver() Driver
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
