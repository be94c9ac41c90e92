package cartridge

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// Load reads a ROM file from disk and constructs a Cartridge from it.
// Archives (.zip, .7z, .gz) are transparently decompressed first; a raw
// .gb/.gbc image, or anything else, is read as-is. Grounded on the
// reference emulator's pkg/utils.LoadFile.
func Load(path string) (*Cartridge, error) {
	rom, err := LoadROMBytes(path)
	if err != nil {
		return nil, err
	}
	return New(rom)
}

// LoadROMBytes reads path and decompresses it if its extension names a
// supported archive format.
func LoadROMBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: reading %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("cartridge: gzip %s: %w", path, err)
		}
		defer r.Close()
		return io.ReadAll(r)
	case ".zip":
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("cartridge: zip %s: %w", path, err)
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("cartridge: zip %s: empty archive", path)
		}
		f, err := zr.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("cartridge: zip %s: %w", path, err)
		}
		defer f.Close()
		return io.ReadAll(f)
	case ".7z":
		sr, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("cartridge: 7z %s: %w", path, err)
		}
		if len(sr.File) == 0 {
			return nil, fmt.Errorf("cartridge: 7z %s: empty archive", path)
		}
		f, err := sr.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("cartridge: 7z %s: %w", path, err)
		}
		defer f.Close()
		return io.ReadAll(f)
	default:
		return data, nil
	}
}
