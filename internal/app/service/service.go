package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/modem-man-gmx/Lightest/internal/app/checksum"
	"github.com/modem-man-gmx/Lightest/internal/app/generator"
	"github.com/modem-man-gmx/Lightest/internal/app/models"
	"github.com/sirupsen/logrus"
)

var ErrOutdated = errors.New("generated file is out of date")

var _ SourceService = (*Service)(nil)

type Service struct {
	saver     models.SourceSaver
	loader    models.SourceLoader
	generator generator.SourceGenerator
	Path      string
}

func NewService(saver models.SourceSaver, loader models.SourceLoader, generator generator.SourceGenerator, path string) *Service {
	return &Service{
		saver:     saver,
		loader:    loader,
		generator: generator,
		Path:      path,
	}
}

// hashingSource пропускает вывод генератора через checksum.Writer,
// чтобы посчитать SHA256 ровно того, что ушло в хранилище.
type hashingSource struct {
	src io.WriterTo
	sum string
}

func (h *hashingSource) WriteTo(w io.Writer) (int64, error) {
	cw := checksum.NewWriter(w)
	n, err := h.src.WriteTo(cw)
	h.sum = cw.Sum()
	return n, err
}

func (s *Service) Generate(ctx context.Context) (models.GenerateResult, error) {
	logrus.WithFields(logrus.Fields{
		"path":  s.Path,
		"tests": s.generator.Count(),
	}).Debug("Generating benchmark source")

	src := &hashingSource{src: s.generator}
	n, err := s.saver.Save(ctx, src)
	if err != nil {
		logrus.WithError(err).Error("Error saving generated source")
		return models.GenerateResult{}, fmt.Errorf("error saving generated source: %w", err)
	}

	result := models.GenerateResult{
		Path:   s.Path,
		Tests:  s.generator.Count(),
		Bytes:  n,
		SHA256: src.sum,
	}
	logrus.WithFields(logrus.Fields{
		"path":   result.Path,
		"tests":  result.Tests,
		"bytes":  result.Bytes,
		"sha256": result.SHA256,
	}).Info("Benchmark source generated")
	return result, nil
}

func (s *Service) Check(ctx context.Context) (models.CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return models.CheckResult{}, err
	}

	var expected bytes.Buffer
	src := &hashingSource{src: s.generator}
	if _, err := src.WriteTo(&expected); err != nil {
		return models.CheckResult{}, fmt.Errorf("error rendering expected source: %w", err)
	}

	result := models.CheckResult{
		Path:     s.Path,
		Expected: src.sum,
	}

	actual, err := s.loader.Load(ctx)
	if errors.Is(err, models.ErrNotGenerated) {
		result.Missing = true
		logrus.WithField("path", s.Path).Warn("Generated source is missing")
		return result, nil
	}
	if err != nil {
		logrus.WithError(err).Error("Error loading generated source")
		return models.CheckResult{}, fmt.Errorf("error loading generated source: %w", err)
	}

	result.Actual, err = checksum.CalculateSHA256(bytes.NewReader(actual))
	if err != nil {
		return models.CheckResult{}, err
	}
	result.UpToDate = result.Actual == result.Expected

	entry := logrus.WithFields(logrus.Fields{
		"path":     result.Path,
		"expected": result.Expected,
		"actual":   result.Actual,
	})
	if result.UpToDate {
		entry.Info("Generated source is up to date")
	} else {
		entry.Warn("Generated source is out of date")
	}
	return result, nil
}
