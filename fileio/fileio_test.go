package fileio

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/ospv/errors"
)

func isErr(err error, phase errors.Phase, kind errors.Kind) bool {
	return stderrors.Is(err, &errors.Error{Phase: phase, Kind: kind})
}

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	payload := []byte(`{"source_file":"a.spv"}`)

	require.NoError(t, WriteTextFile(path, payload))

	text, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, text)

	bin, err := ReadBinaryFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, bin)
}

func TestWriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteTextFile(path, []byte("a much longer first version")))
	require.NoError(t, WriteTextFile(path, []byte("short")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.spv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, err := ReadBinaryFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.spv")
	_, err := ReadBinaryFile(path)
	require.Error(t, err)
	assert.True(t, isErr(err, errors.PhaseRead, errors.KindIO))
	assert.True(t, stderrors.Is(err, os.ErrNotExist))

	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, path, e.Source)
}

func TestReadDirectory(t *testing.T) {
	_, err := ReadTextFile(t.TempDir())
	assert.True(t, isErr(err, errors.PhaseRead, errors.KindIO))
}

func TestWriteIntoMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.json")
	err := WriteTextFile(path, []byte("{}"))
	assert.True(t, isErr(err, errors.PhaseWrite, errors.KindIO))
}

type shortWriter struct{ limit int }

func (w shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		return w.limit, nil
	}
	return len(p), nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWriteReportsShortWrites(t *testing.T) {
	err := write(shortWriter{limit: 3}, "out.json", []byte("0123456789"))
	require.Error(t, err)
	assert.True(t, isErr(err, errors.PhaseWrite, errors.KindShortWrite))
	assert.Contains(t, err.Error(), "wrote 3 of 10 bytes")

	assert.NoError(t, write(shortWriter{limit: 100}, "out.json", []byte("ok")))

	err = write(failingWriter{}, "out.json", []byte("x"))
	assert.True(t, isErr(err, errors.PhaseWrite, errors.KindIO))
	assert.True(t, stderrors.Is(err, os.ErrClosed))
}
