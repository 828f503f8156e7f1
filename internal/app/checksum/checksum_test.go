package checksum

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sha256("abc")
const abcHash = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestCalculateSHA256(t *testing.T) {
	sum, err := CalculateSHA256(strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, abcHash, sum)

	_, err = CalculateSHA256(errReader{})
	assert.Error(t, err)
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	_, err := w.Write([]byte("a"))
	require.NoError(t, err)
	_, err = w.Write([]byte("bc"))
	require.NoError(t, err)

	assert.Equal(t, "abc", buf.String())
	assert.Equal(t, abcHash, w.Sum())
}
