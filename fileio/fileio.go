// Package fileio reads and writes whole files, reporting failures as
// structured I/O errors.
package fileio

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/wippyai/ospv/errors"
)

// ReadBinaryFile reads the whole file at path. A file that yields fewer bytes
// than its size reports a short read.
func ReadBinaryFile(path string) ([]byte, error) {
	return readFile(path)
}

// ReadTextFile reads the whole text file at path.
func ReadTextFile(path string) ([]byte, error) {
	return readFile(path)
}

func readFile(path string) (data []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseRead, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.IO(errors.PhaseRead, path, err)
	}
	if info.IsDir() {
		return nil, errors.New(errors.PhaseRead, errors.KindIO).
			Source(path).
			Detail("is a directory").
			Build()
	}

	size := int(info.Size())
	if !info.Mode().IsRegular() {
		// Pipes and devices report no meaningful size.
		data, err = io.ReadAll(f)
		if err != nil {
			return nil, errors.IO(errors.PhaseRead, path, err)
		}
		return data, nil
	}

	data = make([]byte, size)
	n, err := io.ReadFull(f, data)
	if err != nil {
		if stderrors.Is(err, io.ErrUnexpectedEOF) || stderrors.Is(err, io.EOF) {
			return nil, errors.ShortRead(path, n, size)
		}
		return nil, errors.IO(errors.PhaseRead, path, err)
	}
	return data, nil
}

// WriteTextFile creates or truncates path and writes data to it.
// Partial writes and close failures are reported.
func WriteTextFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.IO(errors.PhaseWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.IO(errors.PhaseWrite, path, cerr)
		}
	}()

	return write(f, path, data)
}

func write(w io.Writer, path string, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return errors.IO(errors.PhaseWrite, path, err)
	}
	if n != len(data) {
		return errors.ShortWrite(path, n, len(data))
	}
	return nil
}
