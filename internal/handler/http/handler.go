package http

import (
	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/internal/service"
	"github.com/MKhiriev/docrelay/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		logger:    logger,
	}
}
