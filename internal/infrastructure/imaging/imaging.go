// Package imaging valida y normaliza las imágenes de recibos antes de
// persistirlas: el formato se detecta por contenido (nunca por extensión ni
// por el header del cliente), la imagen se reescala si excede el tamaño
// máximo y siempre se recomprime a JPEG.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // registro del decoder PNG
	"net/http"

	"golang.org/x/image/draw"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
)

var _ usecase.ReceiptImageProcessor = (*Processor)(nil)

// MaxDimension lado máximo (px) de la imagen almacenada.
const MaxDimension = 1600

// JPEGQuality calidad de compresión de la salida.
const JPEGQuality = 85

// allowedMIME tipos de entrada aceptados (detectados por sniffing).
var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Processor implementa usecase.ReceiptImageProcessor.
type Processor struct{}

// NewProcessor construye el procesador.
func NewProcessor() *Processor { return &Processor{} }

// Process valida el formato por bytes, reescala si hace falta y recomprime.
// Devuelve domain.ErrUnsupportedMedia si el contenido no es JPEG ni PNG.
func (p *Processor) Process(data []byte) ([]byte, string, error) {
	detected := http.DetectContentType(data)
	if !allowedMIME[detected] {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrUnsupportedMedia, err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, "", fmt.Errorf("recomprimir JPEG: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// downscale reescala la imagen para que ningún lado exceda maxDim,
// preservando la relación de aspecto (interpolación Catmull-Rom). Devuelve
// la original si ya está dentro del límite.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = h * maxDim / w
	} else {
		newH = maxDim
		newW = w * maxDim / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
