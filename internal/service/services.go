package service

import (
	"github.com/MKhiriev/docrelay/internal/adapter"
	"github.com/MKhiriev/docrelay/internal/config"
	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/internal/store"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
	ProfileService  ProfileService
}

func NewServices(storages *store.Storages, relay adapter.DocumentRelay, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		DocumentService: NewDocumentService(storages.DocumentRepository, relay, logger),
		ProfileService:  NewProfileService(storages.ProfileRepository, logger),
	}
}
