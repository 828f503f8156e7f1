package models

import (
	"context"
	"errors"
	"io"
)

// GenerateResult описывает результат записи сгенерированного файла.
type GenerateResult struct {
	Path   string `json:"path"`
	Tests  int    `json:"tests"`
	Bytes  int64  `json:"bytes"`
	SHA256 string `json:"sha256"`
}

// CheckResult сравнивает файл на диске с тем, что был бы сгенерирован сейчас.
type CheckResult struct {
	Path     string `json:"path"`
	UpToDate bool   `json:"up_to_date"`
	Expected string `json:"expected_sha256"`
	Actual   string `json:"actual_sha256,omitempty"`
	Missing  bool   `json:"missing,omitempty"`
}

// ErrNotGenerated возвращается хранилищем, в котором ещё нет сгенерированного файла.
var ErrNotGenerated = errors.New("output has not been generated yet")

type SourceSaver interface {
	Save(ctx context.Context, src io.WriterTo) (int64, error)
}

type SourceLoader interface {
	Load(ctx context.Context) ([]byte, error)
}
