package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnexpectedEnd is returned when the input ends in the middle of a word or instruction.
var ErrUnexpectedEnd = errors.New("unexpected end of input")

// ErrUnterminatedString is returned when a literal string has no NUL terminator.
var ErrUnterminatedString = errors.New("unterminated literal string")

// WordSize is the size of a SPIR-V word in bytes.
const WordSize = 4

// Reader reads 32-bit words from an in-memory module with position tracking.
type Reader struct {
	data  []byte
	order binary.ByteOrder
	pos   int
}

// NewReader creates a new Reader over data using the given byte order.
func NewReader(data []byte, order binary.ByteOrder) *Reader {
	return &Reader{data: data, order: order}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Done reports whether the whole input has been consumed.
func (r *Reader) Done() bool {
	return r.pos >= len(r.data)
}

// ReadWord reads one word and advances the position.
func (r *Reader) ReadWord() (uint32, error) {
	if r.Remaining() < WordSize {
		return 0, r.wrapError(ErrUnexpectedEnd)
	}
	w := r.order.Uint32(r.data[r.pos:])
	r.pos += WordSize
	return w, nil
}

// ReadWords reads exactly n words.
func (r *Reader) ReadWords(n int) ([]uint32, error) {
	if n < 0 || r.Remaining() < n*WordSize {
		return nil, r.wrapError(ErrUnexpectedEnd)
	}
	words := make([]uint32, n)
	for i := range words {
		words[i] = r.order.Uint32(r.data[r.pos:])
		r.pos += WordSize
	}
	return words, nil
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at position %d: %w", r.pos, err)
}

// DecodeString decodes a NUL-terminated literal string packed into words,
// lowest-order octet first. It returns the string and the number of words used.
func DecodeString(words []uint32) (string, int, error) {
	buf := make([]byte, 0, len(words)*WordSize)
	for i, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return string(buf), i + 1, nil
			}
			buf = append(buf, b)
		}
	}
	return "", 0, ErrUnterminatedString
}

// EncodeString packs s into words with a NUL terminator and zero padding.
func EncodeString(s string) []uint32 {
	n := len(s)/WordSize + 1
	words := make([]uint32, n)
	for i := 0; i < len(s); i++ {
		words[i/WordSize] |= uint32(s[i]) << (8 * (i % WordSize))
	}
	return words
}
