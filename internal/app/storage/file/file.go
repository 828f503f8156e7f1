package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/modem-man-gmx/Lightest/internal/app/models"
)

// FileStorage сохраняет сгенерированный исходник в файловой системе.
// Запись выполняется во временный файл рядом с целевым, который затем
// переименовывается поверх целевого: либо файл записан целиком, либо
// прежнее содержимое остаётся нетронутым.
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт файловое хранилище для указанного пути.
// Файл не открывается и не создаётся до первого вызова Save.
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{filePath: filePath}
}

func (fs *FileStorage) Path() string {
	return fs.filePath
}

// Save записывает содержимое src в файл.
//
// Параметры:
//   - ctx: контекст выполнения операции
//   - src: источник содержимого, например генератор
//
// Возвращает:
//   - количество записанных байт
//   - ошибку открытия, записи, закрытия или переименования файла
func (fs *FileStorage) Save(ctx context.Context, src io.WriterTo) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	tmpFile := fs.filePath + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", tmpFile, err)
	}

	n, err := fs.writeTo(file, src)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return n, err
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpFile)
		return n, fmt.Errorf("failed to close %s: %w", tmpFile, err)
	}

	if err := os.Rename(tmpFile, fs.filePath); err != nil {
		os.Remove(tmpFile)
		return n, fmt.Errorf("failed to move %s to %s: %w", tmpFile, filepath.Base(fs.filePath), err)
	}

	return n, nil
}

func (fs *FileStorage) writeTo(file *os.File, src io.WriterTo) (int64, error) {
	writer := bufio.NewWriter(file)

	n, err := src.WriteTo(writer)
	if err != nil {
		return n, fmt.Errorf("failed to write %s: %w", fs.filePath, err)
	}

	if err := writer.Flush(); err != nil {
		return n, fmt.Errorf("failed to flush %s: %w", fs.filePath, err)
	}
	return n, nil
}

// Load возвращает текущее содержимое файла.
// Если файла нет, возвращается models.ErrNotGenerated.
func (fs *FileStorage) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", models.ErrNotGenerated, fs.filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fs.filePath, err)
	}
	return data, nil
}
