package adventure

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Magic prefixes for the compressed container formats the loader accepts.
// The game format itself has no magic number; a bare file starts straight
// into the header integers.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Load reads and decodes the game file at path. Files compressed with
// gzip or zstd are decompressed transparently; old adventure archives
// commonly ship that way.
func Load(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading game file: %w", err)
	}
	game, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return game, nil
}

// Decode tokenizes and parses a complete game file held in memory,
// decompressing it first if it is gzip- or zstd-compressed.
func Decode(data []byte) (*Game, error) {
	data, err := Decompress(data)
	if err != nil {
		return nil, err
	}
	tokens, err := Tokenize(data)
	if err != nil {
		return nil, err
	}
	return Parse(NewStream(tokens))
}

// Decompress unwraps a gzip or zstd container, identified by its magic
// prefix. Anything else passes through untouched. Callers that need the
// raw textual form of a compressed game file can use this directly.
func Decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return out, nil

	case bytes.HasPrefix(data, zstdMagic):
		zr, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		out, err := zr.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return out, nil
	}
	return data, nil
}
