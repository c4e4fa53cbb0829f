package imagefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Image is an image file split into the fixed-size header region that is
// copied through unchanged and the payload that gets exchanged with the
// device.
type Image struct {
	Path    string
	Header  []byte
	Payload []byte
}

// Load reads the file at path and splits off the first headerSize bytes.
// A file shorter than the header size is rejected: its header is truncated
// and copying it through would produce a broken output file.
func Load(path string, headerSize int) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	if len(data) < headerSize {
		return nil, fmt.Errorf("image file %s is %d bytes, shorter than the %d-byte header",
			path, len(data), headerSize)
	}

	return &Image{
		Path:    path,
		Header:  data[:headerSize],
		Payload: data[headerSize:],
	}, nil
}

// EncodedPath derives the output path next to the input file:
// "pics/cat.bmp" becomes "pics/cat_encoded.bmp".
func (img *Image) EncodedPath() string {
	ext := filepath.Ext(img.Path)
	stem := strings.TrimSuffix(img.Path, ext)
	return stem + "_encoded" + ext
}

// Save writes the output file: the header verbatim, then the payload.
func Save(path string, header, payload []byte) error {
	out := make([]byte, 0, len(header)+len(payload))
	out = append(out, header...)
	out = append(out, payload...)

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
