package heatmap

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// EncodePNG encodes img losslessly and records dpi in a pHYs chunk.
func EncodePNG(img image.Image, dpi int) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return withPhys(buf.Bytes(), dpi)
}

// PNG layout: 8-byte signature, then IHDR (4 len + 4 type + 13 data + 4 crc).
const ihdrEnd = 8 + 4 + 4 + 13 + 4

// withPhys inserts a pHYs chunk (pixels per metre) right after IHDR.
func withPhys(p []byte, dpi int) ([]byte, error) {
	if len(p) < ihdrEnd || string(p[12:16]) != "IHDR" {
		return nil, fmt.Errorf("heatmap: unexpected PNG header")
	}
	ppm := uint32(math.Round(float64(dpi) / 0.0254))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: metre
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(p)+len(chunk))
	out = append(out, p[:ihdrEnd]...)
	out = append(out, chunk...)
	return append(out, p[ihdrEnd:]...), nil
}

// WritePNG encodes img and replaces path atomically: the image goes to a
// temporary file in the same directory which is then renamed over path.
func WritePNG(path string, img image.Image, dpi int) error {
	data, err := EncodePNG(img, dpi)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".varheat-*.png")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	name := tmp.Name()
	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(name)
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	return nil
}
