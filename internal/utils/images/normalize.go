package images

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
)

// MaxWidth is the widest statement scan kept as uploaded. Wider images are scaled down.
const MaxWidth = 2400

var formats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
	"image/tiff": imaging.TIFF,
	"image/bmp":  imaging.BMP,
}

// ErrCorrupt is returned when bytes sniffed as a decodable format fail to decode.
var ErrCorrupt = errors.New("image cannot be decoded")

// Normalize returns data unchanged unless it is wider than maxWidth, in which case the
// image is auto-oriented, scaled down to maxWidth and re-encoded in its own format.
// Formats the decoder does not know (webp, svg, heic...) are passed through untouched.
func Normalize(data []byte, mimeType string, maxWidth int) ([]byte, bool, error) {
	format, ok := formats[mimeType]
	if !ok {
		return data, false, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return data, false, nil
	}

	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, false, fmt.Errorf("failed to encode resized image: %w", err)
	}
	return buf.Bytes(), true, nil
}
