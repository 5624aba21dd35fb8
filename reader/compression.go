package reader

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Compression is the compression format of a file.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionBzip2
	CompressionXZ
	CompressionZstd
	CompressionLZ4
	CompressionBrotli
)

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionBrotli:
		return "brotli"
	default:
		return "none"
	}
}

var magics = []struct {
	prefix      []byte
	compression Compression
}{
	{[]byte{0x1f, 0x8b}, CompressionGzip},
	{[]byte("BZh"), CompressionBzip2},
	{[]byte{0xfd, '7', 'z', 'X', 'Z', 0x00}, CompressionXZ},
	{[]byte{0x28, 0xb5, 0x2f, 0xfd}, CompressionZstd},
	{[]byte{0x04, 0x22, 0x4d, 0x18}, CompressionLZ4},
}

// DetectCompression identifies the compression of a stream from its first
// bytes. Brotli streams carry no magic number and are never detected here.
func DetectCompression(header []byte) Compression {
	for _, m := range magics {
		if bytes.HasPrefix(header, m.prefix) {
			return m.compression
		}
	}
	return CompressionNone
}

func compressionBySuffix(ext string) Compression {
	switch strings.ToLower(ext) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".bz2":
		return CompressionBzip2
	case ".xz":
		return CompressionXZ
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	case ".br":
		return CompressionBrotli
	default:
		return CompressionNone
	}
}

// openDecompressed opens path and returns a reader of its decompressed
// content. Brotli is selected by the ".br" suffix, everything else by magic
// bytes.
func openDecompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	br := bufio.NewReader(f)
	var compression Compression
	if compressionBySuffix(filepath.Ext(path)) == CompressionBrotli {
		compression = CompressionBrotli
	} else {
		header, _ := br.Peek(6)
		compression = DetectCompression(header)
	}

	r, err := decompress(br, compression)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create %s reader: %w", compression, err)
	}
	return &stackedCloser{Reader: r, close: f.Close}, nil
}

func decompress(r io.Reader, compression Compression) (io.Reader, error) {
	switch compression {
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionBzip2:
		return bzip2.NewReader(r), nil
	case CompressionXZ:
		return xz.NewReader(r)
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return lz4.NewReader(r), nil
	case CompressionBrotli:
		return brotli.NewReader(r), nil
	default:
		return r, nil
	}
}

// readAllDecompressed returns the decompressed content of path.
func readAllDecompressed(path string) ([]byte, error) {
	rc, err := openDecompressed(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}
	return data, nil
}

// stackedCloser closes the decompressor, when it has a Close method, and
// then the underlying file.
type stackedCloser struct {
	io.Reader
	close func() error
}

func (s *stackedCloser) Close() error {
	var err error
	if c, ok := s.Reader.(io.Closer); ok {
		err = c.Close()
	}
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}
