package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/seabattle/app"
	"github.com/wojtekolesinski/seabattle/config"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	uiMode     = flag.String("ui", "", "console or gui, overrides the config")
	seed       = flag.Int64("seed", 0, "random seed, overrides the config")
	logLevel   = flag.String("log-level", "", "debug, info, warn or error, overrides the config")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("main [config.Load]", "err", err)
		}
	}
	if *uiMode != "" {
		cfg.UI = *uiMode
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("main [cfg.Validate]", "err", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatal("main [newLogger]", "err", err)
	}
	defer closeLog()
	log.SetDefault(logger)

	if err := app.New(cfg, logger, os.Stdin, os.Stdout).Run(context.Background()); err != nil {
		logger.Error("main [app.Run]", "err", err)
		os.Exit(1)
	}
}

// newLogger writes to log_file when set. Without a file the GUI owns the
// terminal, so GUI sessions log nowhere.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	w, closeFn, err := logOutput(cfg)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "seabattle",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	return logger, closeFn, nil
}

func logOutput(cfg *config.Config) (io.Writer, func(), error) {
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	case cfg.UI == config.UIGUI:
		return io.Discard, func() {}, nil
	default:
		return os.Stderr, func() {}, nil
	}
}
