package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/layout"
)

// Compression selects the file encoding used by SaveFile and LoadFile.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

// CompressionFor picks the encoding from the file extension:
// ".gz" is gzip, ".zst" is zstd, anything else is plain JSON.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst":
		return Zstd
	default:
		return None
	}
}

// SaveFile writes a snapshot to path, compressed according to its extension.
func SaveFile(path string, g *core.Graph, pos layout.Positions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("snapshot: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	var w io.WriteCloser
	switch CompressionFor(path) {
	case Gzip:
		w = gzip.NewWriter(bw)
	case Zstd:
		zw, zerr := zstd.NewWriter(bw)
		if zerr != nil {
			return fmt.Errorf("snapshot: zstd: %w", zerr)
		}
		w = zw
	default:
		w = nopWriteCloser{bw}
	}

	if err := Save(w, g, pos); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("snapshot: %s: %w", CompressionFor(path), err)
	}

	return bw.Flush()
}

// LoadFile reads a snapshot from path, decompressing according to its
// extension.
func LoadFile(path string, opts ...LoadOption) (*core.Graph, layout.Positions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	switch CompressionFor(path) {
	case Gzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: gzip: %v", ErrMalformedSnapshot, err)
		}
		defer gr.Close()
		r = gr
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: zstd: %v", ErrMalformedSnapshot, err)
		}
		defer zr.Close()
		r = zr
	}

	return Load(r, opts...)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
