package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), 200, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRenderFitsBox(t *testing.T) {
	out, err := Render(encodePNG(t, 64, 64), 16, 8)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 8)
	for _, line := range lines {
		assert.Equal(t, 16, lipgloss.Width(line))
	}
}

func TestRenderKeepsAspectRatio(t *testing.T) {
	out, err := Render(encodePNG(t, 64, 32), 16, 16)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, 16, lipgloss.Width(lines[0]))
}

func TestRenderDoesNotEnlarge(t *testing.T) {
	out, err := Render(encodePNG(t, 4, 3), 40, 20)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2, "odd pixel row shares the last line")
	assert.Equal(t, 4, lipgloss.Width(lines[0]))
}

func TestRenderErrors(t *testing.T) {
	_, err := Render([]byte("not an image"), 10, 10)
	assert.ErrorContains(t, err, "decode image")

	_, err = Render(encodePNG(t, 4, 4), 0, 10)
	assert.ErrorIs(t, err, ErrNoRoom)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "text/plain; charset=utf-8, 12 B", Describe([]byte("not an image")))
	assert.Equal(t, "application/octet-stream, 2.0 KB", Describe(make([]byte, 2048)))
	assert.True(t, strings.HasPrefix(Describe(encodePNG(t, 2, 2)), "image/png, "))
}
