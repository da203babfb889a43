package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const halfBlock = "▀"

// Image decodes a photo, applies its EXIF orientation and draws it with
// half-block cells at width columns.
func Image(data []byte, width int) (surface *Surface, err error) {
	if width < 1 {
		return nil, renderError("render image", fmt.Errorf("width %d", width))
	}
	defer func() {
		if r := recover(); r != nil {
			surface, err = nil, renderError("render image", fmt.Errorf("decoder panic: %v", r))
		}
	}()

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, renderError("render image", err)
	}
	img = Orient(img, orientation(data))

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, renderError("render image", fmt.Errorf("empty image"))
	}
	scale := float64(width) / float64(b.Dx())
	h := int(math.Max(1, math.Round(float64(b.Dy())*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, width, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	lines := halfBlocks(dst)
	return &Surface{
		Kind:         media.Image,
		Lines:        lines,
		Width:        width,
		Height:       len(lines),
		SourceWidth:  float64(b.Dx()),
		SourceHeight: float64(b.Dy()),
		Scale:        scale,
	}, nil
}

func orientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return v
}

// Orient applies an EXIF orientation (1-8) to img. Unknown values leave it
// unchanged.
func Orient(img image.Image, o int) image.Image {
	if o < 2 || o > 8 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dw, dh := w, h
	if o >= 5 {
		dw, dh = h, w
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			var sx, sy int
			switch o {
			case 2:
				sx, sy = w-1-x, y
			case 3:
				sx, sy = w-1-x, h-1-y
			case 4:
				sx, sy = x, h-1-y
			case 5:
				sx, sy = y, x
			case 6:
				sx, sy = y, h-1-x
			case 7:
				sx, sy = w-1-y, h-1-x
			case 8:
				sx, sy = w-1-y, x
			}
			dst.Set(x, y, img.At(b.Min.X+sx, b.Min.Y+sy))
		}
	}
	return dst
}

// halfBlocks draws two pixel rows per terminal row: the upper pixel is the
// foreground of "▀" and the lower one its background.
func halfBlocks(img *image.RGBA) []string {
	b := img.Bounds()
	lines := make([]string, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hex(img.At(x, y)))
			if y+1 < b.Max.Y {
				style = style.Background(hex(img.At(x, y+1)))
			}
			sb.WriteString(style.Render(halfBlock))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
