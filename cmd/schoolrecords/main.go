package main

import (
	"fmt"
	"os"

	"github.com/vcrini/schoolrecords/internal/config"
	"github.com/vcrini/schoolrecords/internal/observability"
	"github.com/vcrini/schoolrecords/internal/tui"
)

const appName = "schoolrecords"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := observability.Open(cfg.LogFile, cfg.LogLevel, appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(cfg, logger)
	if runErr != nil {
		logger.Errorf("ui stopped: %v", runErr)
	} else {
		logger.Infof("bye")
	}
	if err := closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "close log: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running the application: %v\n", runErr)
		os.Exit(1)
	}
}
