package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/modem-man-gmx/Lightest/internal/app"
	"github.com/modem-man-gmx/Lightest/internal/app/config"
	"github.com/sirupsen/logrus"
)

func main() {
	var memProfileName string
	var cpuProfileName string
	var testLoad int
	var rounds int

	flag.StringVar(&memProfileName, "profile", "base.pprof", "Heap profile file name")
	flag.StringVar(&cpuProfileName, "cpuprofile", "", "CPU profile file name (optional)")
	flag.IntVar(&testLoad, "load", 100000, "Number of tests to generate per round")
	flag.IntVar(&rounds, "rounds", 10, "Number of generation rounds")
	flag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	if err := os.MkdirAll("profiles", os.ModePerm); err != nil {
		logrus.WithError(err).Fatal("Failed to create profiles directory")
	}
	memProfilePath := filepath.Join("profiles", memProfileName)

	logrus.WithFields(logrus.Fields{
		"test_load": testLoad,
		"rounds":    rounds,
		"heap_path": memProfilePath,
		"cpu_path":  cpuProfileName,
	}).Info("Starting profiling")

	var cpuProfileFile *os.File
	if cpuProfileName != "" {
		cpuPath := filepath.Join("profiles", cpuProfileName)
		f, err := os.Create(cpuPath)
		if err != nil {
			logrus.WithError(err).Fatal("Could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logrus.WithError(err).Fatal("Could not start CPU profile")
		}
		logrus.WithField("file", cpuPath).Info("CPU profiling started")
		cpuProfileFile = f
	}

	// Пустой путь выбирает хранилище в памяти: профилируется генерация, а не диск.
	cfg := &config.Config{Count: testLoad, LogLevel: "warn"}
	appInstance, err := app.NewApp(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize application")
	}

	logrus.SetLevel(logrus.WarnLevel)
	ctx := context.Background()
	for i := 0; i < rounds; i++ {
		if _, err := appInstance.Service.Generate(ctx); err != nil {
			logrus.WithError(err).Fatal("Generation failed")
		}
	}
	logrus.SetLevel(logrus.InfoLevel)

	if cpuProfileFile != nil {
		pprof.StopCPUProfile()
		cpuProfileFile.Close()
		logrus.WithField("file", cpuProfileName).Info("CPU profiling stopped")
	}

	f, err := os.Create(memProfilePath)
	if err != nil {
		logrus.WithError(err).Fatal("Could not create memory profile")
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		logrus.WithError(err).Fatal("Could not write memory profile")
	}
	logrus.Infof("Heap profile written to %s", memProfilePath)
	logrus.Infof("To analyze: go tool pprof -http=:8080 %s", memProfilePath)
}
