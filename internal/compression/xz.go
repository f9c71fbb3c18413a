// Package compression provides xz stream compression for exported colormaps.
package compression

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// MaxDecompressedSize caps how much data NewReader will produce from a
// compressed stream.
const MaxDecompressedSize = 16 * 1024 * 1024

// ErrSizeLimit is returned when a decompressed stream exceeds its limit.
var ErrSizeLimit = errors.New("decompression size limit exceeded")

var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// IsXZ reports whether header starts with the xz stream magic.
func IsXZ(header []byte) bool {
	return bytes.HasPrefix(header, xzMagic)
}

// NewXZWriter returns a writer that xz-compresses everything written to it
// into w. Close must be called to flush the stream; it does not close w.
func NewXZWriter(w io.Writer) (io.WriteCloser, error) {
	xzw, err := xz.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz writer: %w", err)
	}
	return xzw, nil
}

// NewReader returns a reader over the content of r. xz streams are detected by
// their magic bytes and decompressed, up to MaxDecompressedSize bytes; any
// other input is passed through unchanged.
func NewReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(len(xzMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read stream header: %w", err)
	}
	if !IsXZ(header) {
		return br, nil
	}

	xzr, err := xz.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	return NewLimitedReader(xzr, MaxDecompressedSize), nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Unlike io.LimitedReader it fails loudly instead of reporting EOF.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Distinguish a stream that ends exactly at the limit from one that
		// keeps going.
		var extra [1]byte
		n, err := l.R.Read(extra[:])
		if n == 0 && err != nil {
			return 0, err
		}
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
