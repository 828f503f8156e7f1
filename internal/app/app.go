package app

import (
	"path/filepath"

	"github.com/modem-man-gmx/Lightest/internal/app/config"
	"github.com/modem-man-gmx/Lightest/internal/app/generator"
	"github.com/modem-man-gmx/Lightest/internal/app/service"
	"github.com/modem-man-gmx/Lightest/internal/app/storage"
)

type App struct {
	Service *service.Service
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sourceStorage := storage.NewStorage(cfg.OutputPath)

	fileName := generator.DefaultFileName
	if cfg.OutputPath != "" {
		fileName = filepath.Base(cfg.OutputPath)
	}
	sourceGenerator := generator.NewGenerator(cfg.Count, fileName)

	sourceService := service.NewService(
		sourceStorage.AsSourceSaver(),
		sourceStorage.AsSourceLoader(),
		sourceGenerator,
		sourceStorage.Path(),
	)

	return &App{
		Service: sourceService,
	}, nil
}
