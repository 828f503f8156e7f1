package main

import (
	"fmt"
	"os"

	"github.com/modem-man-gmx/Lightest/internal/app"
	"github.com/modem-man-gmx/Lightest/internal/app/config"
	"github.com/modem-man-gmx/Lightest/internal/app/service"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	if err := newCLI(cfg).Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("lightestgen failed")
	}
}

func newCLI(cfg *config.Config) *cli.App {
	return &cli.App{
		Name:  "lightestgen",
		Usage: "Generate the Lightest benchmark source file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   cfg.OutputPath,
				Usage:   "path of the generated source file",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   cfg.Count,
				Usage:   "number of generated tests",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
				Usage: "logrus level: debug, info, warn, error",
			},
		},
		Before: func(c *cli.Context) error {
			cfg.OutputPath = c.String("output")
			cfg.Count = c.Int("count")
			cfg.LogLevel = c.String("log-level")
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, _ := logrus.ParseLevel(cfg.LogLevel)
			logrus.SetLevel(level)
			return nil
		},
		Action: func(c *cli.Context) error {
			return generate(c, cfg)
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "write the source file (default)",
				Action: func(c *cli.Context) error {
					return generate(c, cfg)
				},
			},
			{
				Name:  "check",
				Usage: "fail if the source file on disk differs from a fresh generation",
				Action: func(c *cli.Context) error {
					return check(c, cfg)
				},
			},
		},
	}
}

func generate(c *cli.Context, cfg *config.Config) error {
	a, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	_, err = a.Service.Generate(c.Context)
	return err
}

func check(c *cli.Context, cfg *config.Config) error {
	a, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	result, err := a.Service.Check(c.Context)
	if err != nil {
		return err
	}
	if !result.UpToDate {
		return fmt.Errorf("%w: %s", service.ErrOutdated, result.Path)
	}
	return nil
}
