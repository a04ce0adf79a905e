//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

var ErrSnapshotFormat = errors.New("snapshot: unsupported file extension (want .png or .bmp)")

// EncodeSnapshot writes img to w in the format named by ext (".png" or
// ".bmp", case-insensitive).
func EncodeSnapshot(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrSnapshotFormat, ext)
}

// WriteSnapshot saves img to path, picking the format from the extension.
func WriteSnapshot(path string, img image.Image) error {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".png", ".bmp":
	default:
		return fmt.Errorf("%w: %q", ErrSnapshotFormat, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeSnapshot(f, ext, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return f.Close()
}
