package memory

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/modem-man-gmx/Lightest/internal/app/models"
)

type MemoryStorage struct {
	data  []byte
	saved bool
	mu    sync.RWMutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (ms *MemoryStorage) Path() string {
	return ""
}

func (ms *MemoryStorage) Save(ctx context.Context, src io.WriterTo) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	n, err := src.WriteTo(&buf)
	if err != nil {
		return n, err
	}

	ms.mu.Lock()
	ms.data = buf.Bytes()
	ms.saved = true
	ms.mu.Unlock()
	return n, nil
}

func (ms *MemoryStorage) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if !ms.saved {
		return nil, models.ErrNotGenerated
	}
	return bytes.Clone(ms.data), nil
}
