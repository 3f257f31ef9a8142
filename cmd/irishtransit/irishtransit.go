package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/irishtransit/pkg/api"
	"github.com/travigo/irishtransit/pkg/config"
	"github.com/travigo/irishtransit/pkg/dataaggregator/global"
	"github.com/travigo/irishtransit/pkg/transit"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("IRISHTRANSIT_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("IRISHTRANSIT_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := global.Setup(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup data sources")
	}

	app := &cli.App{
		Name:        "irishtransit",
		Description: "Irish Rail and Dublin RTPI transit data, normalized",

		Commands: append(transit.RegisterCLI(), api.RegisterCLI()),

		// --field values are free text and may contain commas
		DisableSliceFlagSeparator: true,
	}

	err = app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
