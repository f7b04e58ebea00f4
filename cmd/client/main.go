package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-softlayer-config/internal/adapter"
	"github.com/MKhiriev/go-softlayer-config/internal/client"
	"github.com/MKhiriev/go-softlayer-config/internal/config"
	"github.com/MKhiriev/go-softlayer-config/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cl, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("sl-client", cl.Verbose)
	if cl.Verbose {
		printBuildInfo()
	}

	settings, err := config.NewSettingsResolver(config.DefaultResolvers()...).
		WithLogger(log).
		Resolve(cl.Arguments)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving client settings")
	}

	api, err := adapter.NewHTTPAPIAdapter(settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	app, err := client.NewApp(settings, api, cl, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
