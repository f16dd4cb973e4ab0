// Package preview draws image bytes in a terminal using upper half-block
// cells, two pixel rows per line.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"
)

const halfBlock = "▀"

var ErrNoRoom = errors.New("no room to draw preview")

// Render decodes data and scales it to fit within width columns and height
// lines, keeping the aspect ratio. Images smaller than the box are not
// enlarged.
func Render(data []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", ErrNoRoom
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	thumb := resize.Thumbnail(uint(width), uint(height*2), img, resize.Bilinear)
	b := thumb.Bounds()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hex(thumb.At(x, y)))
			if y+1 < b.Max.Y {
				style = style.Background(hex(thumb.At(x, y+1)))
			}
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String(), nil
}

// Describe summarises bytes that could not be drawn.
func Describe(data []byte) string {
	return fmt.Sprintf("%s, %s", http.DetectContentType(data), size(len(data)))
}

func size(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
