package imagefile

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildFileHeader(magic uint16, size, offBits uint32) []byte {
	buf := make([]byte, FileHeaderSize)
	binary.LittleEndian.PutUint16(buf[0:2], magic)
	binary.LittleEndian.PutUint32(buf[2:6], size)
	binary.LittleEndian.PutUint32(buf[10:14], offBits)
	return buf
}

func TestParseFileHeader(t *testing.T) {
	data := buildFileHeader(bmpMagic, 4242, 138)

	header, err := ParseFileHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint16(bmpMagic), header.Type)
	require.Equal(t, uint32(4242), header.Size)
	require.Equal(t, uint32(138), header.OffBits)
	require.Zero(t, header.Reserved1)
	require.Zero(t, header.Reserved2)
}

func TestParseFileHeaderBadMagic(t *testing.T) {
	data := buildFileHeader(0x5089, 100, 54) // PNG-ish, not 'BM'

	_, err := ParseFileHeader(data)
	require.ErrorContains(t, err, "not a valid BMP file")
}

func TestParseFileHeaderTruncated(t *testing.T) {
	_, err := ParseFileHeader(make([]byte, FileHeaderSize-1))
	require.ErrorContains(t, err, "truncated")
}

func TestInspectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.bmp")
	data := append(buildFileHeader(bmpMagic, 200, 138), make([]byte, 100)...)
	require.NoError(t, os.WriteFile(path, data, 0644))

	header, err := InspectFile(path)
	require.NoError(t, err)
	require.Equal(t, uint32(200), header.Size)
	require.Equal(t, uint32(138), header.OffBits)
}

func TestInspectFileTooSmall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.bmp")
	require.NoError(t, os.WriteFile(path, []byte{0x42, 0x4D}, 0644))

	_, err := InspectFile(path)
	require.ErrorContains(t, err, "failed to read bitmap file header")
}
