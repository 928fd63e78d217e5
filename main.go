package main

import (
	"os"
	"time"

	"bikeshare-explorer/config"
	"bikeshare-explorer/dataset"
	"bikeshare-explorer/prompt"
	"bikeshare-explorer/services"
	"bikeshare-explorer/session"
	"bikeshare-explorer/storage"
	"bikeshare-explorer/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		utils.NewLogger().Error("Invalid configuration: %v", err)
		return 1
	}

	logger := utils.NewLoggerTo(os.Stderr, utils.ParseLevel(cfg.LogLevel))
	logger.Debug("Config: data dir %s | page size %d | archive enabled %t",
		cfg.DataDir, cfg.PageSize, cfg.ArchiveEnabled())

	registry, err := config.LoadRegistry(cfg)
	if err != nil {
		logger.Error("Failed to load city registry: %v", err)
		return 1
	}

	archive := openArchive(cfg, logger)
	defer func() {
		if err := archive.Close(); err != nil {
			logger.Warn("Closing archive: %v", err)
		}
	}()

	s := &session.Session{
		Prompter: prompt.New(os.Stdin, os.Stdout),
		Loader:   dataset.NewLoader(registry, logger),
		Reports:  services.NewReportService(logger, os.Stdout),
		Archive:  archive,
		Logger:   logger,
		Out:      os.Stdout,
		Cities:   registry.Cities(),
		PageSize: cfg.PageSize,
	}

	if err := s.Run(); err != nil {
		logger.Error("Session failed: %v", err)
		return 1
	}
	return 0
}

// openArchive builds the enabled summary sinks. Sinks that fail to open are
// skipped with a warning; the report does not depend on them.
func openArchive(cfg *config.Config, logger *utils.Logger) storage.MultiWriter {
	var sinks storage.MultiWriter

	if cfg.SummaryCSVPath != "" {
		w, err := storage.NewCSVWriter(cfg.SummaryCSVPath)
		if err != nil {
			logger.Warn("Summary CSV disabled: %v", err)
		} else {
			sinks = append(sinks, w)
		}
	}

	if cfg.ArchiveEnabled() {
		dialect, err := storage.DialectFor(cfg.ArchiveDriver)
		if err != nil {
			logger.Warn("SQL archive disabled: %v", err)
			return sinks
		}
		w, err := storage.NewSQLWriter(dialect, cfg.ArchiveDSN, &utils.RetryConfig{
			MaxAttempts: cfg.ArchiveMaxRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		})
		if err != nil {
			logger.Warn("SQL archive disabled: %v", err)
		} else {
			sinks = append(sinks, w)
		}
	}

	return sinks
}
