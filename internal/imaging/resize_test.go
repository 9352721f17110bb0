package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeToWidth(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		width      int
		wantH      int
	}{
		{"exact halving", 840, 600, 420, 300},
		{"odd dimensions round to nearest", 997, 413, 420, 174},
		{"upscale preserves ratio", 210, 297, 420, 594},
		{"tall sliver never collapses below one pixel", 1000, 1, 420, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.srcW, tt.srcH))
			dst := ResizeToWidth(src, tt.width)
			assert.Equal(t, tt.width, dst.Bounds().Dx())
			assert.Equal(t, tt.wantH, dst.Bounds().Dy())
		})
	}
}

func TestResizeFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "page.png")
	dstPath := filepath.Join(dir, "page_small.png")

	src := image.NewRGBA(image.Rect(0, 0, 840, 600))
	for y := 0; y < 600; y++ {
		for x := 0; x < 840; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x % 256), A: 255})
		}
	}
	f, err := os.Create(srcPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	require.NoError(t, ResizeFile(srcPath, dstPath, 420))

	out, err := os.Open(dstPath)
	require.NoError(t, err)
	defer func() { _ = out.Close() }()
	img, err := png.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 420, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestResizeFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := ResizeFile(filepath.Join(dir, "nope.png"), filepath.Join(dir, "out.png"), 420)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
