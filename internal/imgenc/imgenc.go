package imgenc

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/ewgtools/ewgpal/internal/log"
	pnm "github.com/go-forks/gopnm"
	"github.com/google/renameio/v2"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder encodes an image in one raster format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// Formats returns the supported output extensions, sorted.
func Formats() []string {
	return []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".pnm", ".ppm", ".tif", ".tiff"}
}

// ForPath selects an encoder from the output path's extension. A path with
// no extension gets the PNG encoder; an unknown extension is an error.
func ForPath(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "", ".png":
		return pngEncoder{}, nil
	case ".bmp":
		return bmpEncoder{}, nil
	case ".gif":
		return gifEncoder{}, nil
	case ".jpg", ".jpeg":
		return jpegEncoder{}, nil
	case ".pnm", ".ppm":
		return ppmEncoder{}, nil
	case ".tif", ".tiff":
		return tiffEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: %s)",
			ext, strings.Join(Formats(), " "))
	}
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

type gifEncoder struct{}

func (gifEncoder) Encode(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, &gif.Options{NumColors: 256})
}

// jpegQuality keeps JPEG output near-lossless; palette images are small.
const jpegQuality = 95

type jpegEncoder struct{}

func (jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
}

type ppmEncoder struct{}

func (ppmEncoder) Encode(w io.Writer, img image.Image) error {
	return pnm.Encode(w, img, pnm.PPM)
}

type tiffEncoder struct{}

func (tiffEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// WriteFile encodes img in the format selected by path's extension and
// atomically replaces path only after a complete write. A failed run never
// leaves a partial file or clobbers an existing one.
func WriteFile(path string, img image.Image) error {
	enc, err := ForPath(path)
	if err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("creating pending output file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			logger := log.WithComponent("imgenc")
			logger.Debug().Err(err).Msg("cleanup pending output file")
		}
	}()

	if err := enc.Encode(pending, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
