package storage_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modem-man-gmx/Lightest/internal/app/generator"
	"github.com/modem-man-gmx/Lightest/internal/app/storage"
)

// Пример записи сгенерированного файла в файловое хранилище
func ExampleNewStorage() {
	dir, err := os.MkdirTemp("", "lightest")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	s := storage.NewStorage(filepath.Join(dir, "lightest_test.cpp"))
	gen := generator.NewGenerator(2, generator.DefaultFileName)

	n, err := s.Save(context.Background(), gen)
	if err != nil {
		fmt.Println(err)
		return
	}

	data, err := s.Load(context.Background())
	fmt.Println(int64(len(data)) == n, err)
	// Output: true <nil>
}
