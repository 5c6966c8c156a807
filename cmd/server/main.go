package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/docrelay/internal/adapter"
	"github.com/MKhiriev/docrelay/internal/config"
	handlerhttp "github.com/MKhiriev/docrelay/internal/handler/http"
	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/internal/server"
	"github.com/MKhiriev/docrelay/internal/service"
	"github.com/MKhiriev/docrelay/internal/store"
	"github.com/MKhiriev/docrelay/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("docrelay-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	relay, err := adapter.NewHTTPDocumentRelay(cfg.Relay, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating document relay")
	}

	services := service.NewServices(storages, relay, *cfg, log)
	handler := handlerhttp.NewHandler(services, validators.NewCredentialsValidator(), log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
