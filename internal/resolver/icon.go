package resolver

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/tiles/internal/models"
)

// IconInfo describes the first image stored in an .ico file.
type IconInfo struct {
	Path   string
	Width  int
	Height int
	Images int
}

// icondir header followed by the first icondirentry
type icoHeader struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type icoEntry struct {
	Width      uint8
	Height     uint8
	Colors     uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	BytesInRes uint32
	Offset     uint32
}

// LoadIcon reads the header of the icon at path and validates it.
// Callers fall back to DefaultGlyph on any error.
func LoadIcon(path string) (IconInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return IconInfo{}, fmt.Errorf("failed to open icon: %w", err)
	}
	defer f.Close()

	var hdr icoHeader
	if err := binary.Read(f, binary.LittleEndian, &hdr); err != nil {
		return IconInfo{}, fmt.Errorf("%w: %v", ErrInvalidIcon, err)
	}
	if hdr.Reserved != 0 || hdr.Type != 1 || hdr.Count == 0 {
		return IconInfo{}, ErrInvalidIcon
	}

	var entry icoEntry
	if err := binary.Read(f, binary.LittleEndian, &entry); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return IconInfo{}, fmt.Errorf("%w: truncated directory", ErrInvalidIcon)
		}
		return IconInfo{}, fmt.Errorf("failed to read icon: %w", err)
	}

	return IconInfo{
		Path:   path,
		Width:  icoDimension(entry.Width),
		Height: icoDimension(entry.Height),
		Images: int(hdr.Count),
	}, nil
}

// a stored 0 means 256 pixels
func icoDimension(b uint8) int {
	if b == 0 {
		return 256
	}
	return int(b)
}

// DefaultGlyph returns the glyph shown for p when it has no loadable icon.
func DefaultGlyph(p models.Project) string {
	return Glyph(p.Command)
}
