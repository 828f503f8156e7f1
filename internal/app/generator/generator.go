package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// DefaultFileName имя файла, которое бенчмарк Lightest ожидает увидеть в __FILE_NAME__.
const DefaultFileName = "lightest_test.cpp"

const footer = `

REPORT() {
  REPORT_PASS_RATE();
}
`

var ErrNegativeCount = errors.New("test count must not be negative")

type SourceGenerator interface {
	io.WriterTo
	Count() int
}

// Generator формирует исходный файл с count однотипными тестами Lightest.
// Вывод детерминирован: одинаковые параметры дают побайтово одинаковый файл.
type Generator struct {
	count    int
	fileName string
}

func NewGenerator(count int, fileName string) *Generator {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Generator{
		count:    count,
		fileName: fileName,
	}
}

func (g *Generator) Count() int {
	return g.count
}

func (g *Generator) FileName() string {
	return g.fileName
}

// Header возвращает фиксированную преамбулу файла.
func (g *Generator) Header() string {
	return "\n// Generated by generate_lightest_test.py\n" +
		"#include <lightest/lightest.h>\n" +
		"#include <lightest/data_analysis_ext.h>\n" +
		"\n" +
		"// Provide a better file name info\n" +
		"#undef __FILE_NAME__\n" +
		"#define __FILE_NAME__ \"" + g.fileName + "\"\n" +
		"\n"
}

func (g *Generator) Footer() string {
	return footer
}

// Line возвращает k-ю строку теста без перевода строки, например
// TEST(Test1) { REQ(0, ==, 0); } для k = 0.
func Line(k int) string {
	return string(appendLine(nil, k))
}

func appendLine(buf []byte, k int) []byte {
	buf = append(buf, "TEST(Test"...)
	buf = strconv.AppendInt(buf, int64(k)+1, 10)
	buf = append(buf, ") { REQ("...)
	buf = strconv.AppendInt(buf, int64(k), 10)
	buf = append(buf, ", ==, "...)
	buf = strconv.AppendInt(buf, int64(k), 10)
	buf = append(buf, "); }"...)
	return buf
}

// WriteTo пишет заголовок, count строк тестов и завершающий блок в w.
//
// Возвращает:
//   - количество записанных байт
//   - первую ошибку записи; частично записанные данные не откатываются,
//     за атомарность отвечает хранилище
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	if g.count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, g.count)
	}

	cw := &countingWriter{w: w}
	writer := bufio.NewWriter(cw)

	if _, err := writer.WriteString(g.Header()); err != nil {
		return cw.n, fmt.Errorf("failed to write header: %w", err)
	}

	line := make([]byte, 0, 64)
	for k := 0; k < g.count; k++ {
		line = appendLine(line[:0], k)
		line = append(line, '\n')
		if _, err := writer.Write(line); err != nil {
			return cw.n, fmt.Errorf("failed to write test %d: %w", k+1, err)
		}
	}

	if _, err := writer.WriteString(footer); err != nil {
		return cw.n, fmt.Errorf("failed to write footer: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return cw.n, fmt.Errorf("failed to flush output: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
