package storage

import (
	"context"
	"io"

	"github.com/modem-man-gmx/Lightest/internal/app/models"
	"github.com/modem-man-gmx/Lightest/internal/app/storage/file"
	"github.com/modem-man-gmx/Lightest/internal/app/storage/memory"
	"github.com/sirupsen/logrus"
)

type backend interface {
	models.SourceSaver
	models.SourceLoader
	Path() string
}

type Storage struct {
	impl backend
}

// NewStorage выбирает хранилище для сгенерированного файла: файловое,
// если задан путь, иначе хранилище в памяти (пробный запуск).
func NewStorage(filePath string) *Storage {
	if filePath != "" {
		logrus.WithField("file", filePath).Info("Используется файловое хранилище")
		return &Storage{impl: file.NewFileStorage(filePath)}
	}

	logrus.Info("Используется хранилище в памяти")
	return &Storage{impl: memory.NewMemoryStorage()}
}

func (s *Storage) Path() string {
	return s.impl.Path()
}

func (s *Storage) Save(ctx context.Context, src io.WriterTo) (int64, error) {
	return s.impl.Save(ctx, src)
}

func (s *Storage) Load(ctx context.Context) ([]byte, error) {
	return s.impl.Load(ctx)
}

func (s *Storage) AsSourceSaver() models.SourceSaver {
	return s.impl
}

func (s *Storage) AsSourceLoader() models.SourceLoader {
	return s.impl
}
