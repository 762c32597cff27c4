package store

import (
	"github.com/MKhiriev/go-login-keeper/internal/config"
	"github.com/MKhiriev/go-login-keeper/internal/crypto"
	"github.com/MKhiriev/go-login-keeper/internal/logger"
)

// Storages bundles all repositories the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires up the persistence layer from the storage configuration.
func NewStorages(cfg config.Storage, hasher crypto.PasswordHasher, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewFileUserRepository(cfg.Files, hasher, logger),
	}
}
