package service

import (
	"github.com/MKhiriev/go-login-keeper/internal/logger"
	"github.com/MKhiriev/go-login-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, sessions SessionManager, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, sessions, logger),
	}
}
