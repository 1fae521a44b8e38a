package pdf

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// RenderFirstPage rasterizes page 1 at the given DPI and encodes it as
// png or jpeg.
func RenderFirstPage(inputPath, format string, dpi int) ([]byte, error) {
	doc, err := fitz.New(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("document has no pages")
	}
	img, err := doc.ImageDPI(0, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("render page 1: %w", err)
	}

	var buf bytes.Buffer
	switch format {
	case "jpg", "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
