package imagefile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// FileHeaderSize is the size of the BITMAPFILEHEADER structure.
const FileHeaderSize = 14

// bmpMagic is the 'BM' signature, read as a little-endian uint16.
const bmpMagic = 0x4D42

// FileHeader is the BITMAPFILEHEADER at the start of every BMP file.
// All fields are little-endian on disk.
type FileHeader struct {
	Type      uint16 // must be 'BM'
	Size      uint32 // size of the file in bytes
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // offset from the start of the file to the pixel data
}

// ParseFileHeader decodes a BITMAPFILEHEADER from the start of data and
// validates the 'BM' signature.
func ParseFileHeader(data []byte) (*FileHeader, error) {
	if len(data) < FileHeaderSize {
		return nil, fmt.Errorf("bitmap file header truncated: got %d bytes, need %d",
			len(data), FileHeaderSize)
	}

	h := &FileHeader{
		Type:      binary.LittleEndian.Uint16(data[0:2]),
		Size:      binary.LittleEndian.Uint32(data[2:6]),
		Reserved1: binary.LittleEndian.Uint16(data[6:8]),
		Reserved2: binary.LittleEndian.Uint16(data[8:10]),
		OffBits:   binary.LittleEndian.Uint32(data[10:14]),
	}

	if h.Type != bmpMagic {
		return nil, fmt.Errorf("not a valid BMP file: magic is 0x%04X, expected 0x%04X",
			h.Type, bmpMagic)
	}

	return h, nil
}

// InspectFile reads and parses the BITMAPFILEHEADER of the file at path.
func InspectFile(path string) (*FileHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, FileHeaderSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("failed to read bitmap file header: %w", err)
	}

	return ParseFileHeader(buf)
}
