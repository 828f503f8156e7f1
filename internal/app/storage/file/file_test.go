package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modem-man-gmx/Lightest/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringSource string

func (s stringSource) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(s))
	return int64(n), err
}

type failingSource struct{}

func (failingSource) WriteTo(w io.Writer) (int64, error) {
	n, _ := io.WriteString(w, "partial")
	return int64(n), errors.New("generation failed")
}

func TestNewFileStorage(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "lightest_test.cpp")

	storage := NewFileStorage(filePath)
	assert.NotNil(t, storage)
	assert.Equal(t, filePath, storage.Path())
	assert.NoFileExists(t, filePath)
}

func TestFileStorage_Save(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "lightest_test.cpp")
	storage := NewFileStorage(filePath)
	ctx := context.Background()

	n, err := storage.Save(ctx, stringSource("first"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	data, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	n, err = storage.Save(ctx, stringSource("second run"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)

	data, err = os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "second run", string(data), "existing file should be overwritten")
	assert.NoFileExists(t, filePath+".tmp")
}

func TestFileStorage_Save_LargeOutput(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "big.cpp")
	storage := NewFileStorage(filePath)

	content := strings.Repeat("TEST(TestN) { REQ(0, ==, 0); }\n", 10000)
	n, err := storage.Save(context.Background(), stringSource(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), n)

	data, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestFileStorage_Save_KeepsPreviousOnError(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "lightest_test.cpp")
	require.NoError(t, os.WriteFile(filePath, []byte("previous"), 0644))

	storage := NewFileStorage(filePath)
	_, err := storage.Save(context.Background(), failingSource{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed")

	data, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
	assert.NoFileExists(t, filePath+".tmp")
}

func TestFileStorage_Save_InvalidPath(t *testing.T) {
	storage := NewFileStorage("/nonexistent/dir/lightest_test.cpp")
	_, err := storage.Save(context.Background(), stringSource("data"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileStorage_Save_Cancelled(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "lightest_test.cpp")
	storage := NewFileStorage(filePath)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Save(ctx, stringSource("data"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filePath)
}

func TestFileStorage_Load(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "lightest_test.cpp")
	storage := NewFileStorage(filePath)
	ctx := context.Background()

	_, err := storage.Load(ctx)
	assert.ErrorIs(t, err, models.ErrNotGenerated)

	_, err = storage.Save(ctx, stringSource("content"))
	require.NoError(t, err)

	data, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}
