package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"phonetrace/internal/browser"
	"phonetrace/internal/geocode"
	"phonetrace/internal/lookup"
	"phonetrace/internal/mapfile"
	"phonetrace/internal/report"
	"phonetrace/platform/apperr"
	"phonetrace/platform/config"
	"phonetrace/platform/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args, os.LookupEnv)
	if err == flag.ErrHelp {
		config.Usage(os.Stdout)
		return apperr.ExitOK
	}
	if err != nil {
		presenter := report.New(os.Stdout, os.Stderr, true, false)
		presenter.Error(err)
		config.Usage(os.Stderr)
		return exitCode(err)
	}

	log := logger.New(cfg.Env)
	presenter := report.New(os.Stdout, os.Stderr, cfg.Quiet, cfg.NoColor)
	presenter.Banner()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	geocoder := geocode.NewClient(cfg, log)
	pipeline := lookup.New(geocoder, log)

	res, err := pipeline.Run(ctx, cfg.Number)
	if err != nil {
		presenter.Error(err)
		return exitCode(err)
	}

	mapPath := ""
	var mapErr error
	if res.Coordinates != nil {
		mapPath, mapErr = mapfile.NewExporter(cfg.OutputDir, log).Export(res)
	}

	presenter.Result(res, mapPath)

	if res.GeocodeFailure != nil {
		presenter.Warning(res.GeocodeFailure)
	}
	if mapErr != nil {
		presenter.Error(mapErr)
		return exitCode(mapErr)
	}

	if cfg.OpenBrowser && mapPath != "" {
		if err := browser.Open(mapPath); err != nil {
			log.Warn("could not open browser", "error", err)
			presenter.Warningf("could not open the map in a browser: %v", err)
		}
	}

	return apperr.ExitOK
}

func exitCode(err error) int {
	if ae, ok := err.(*apperr.Error); ok {
		return ae.ExitCode()
	}
	return apperr.ExitFailure
}
