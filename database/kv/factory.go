package kv

import (
	"fmt"

	"roomify/config"
)

// New returns the Store selected by the configured storage backend.
func New() (Store, error) {
	switch Driver(config.AppConfig.StorageBackend) {
	case DriverRedis:
		return NewRedis()
	case DriverFile:
		return NewFile(config.AppConfig.StorageDir)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.AppConfig.StorageBackend)
	}
}
