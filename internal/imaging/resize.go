// Package imaging wraps the raster operations the showcase pipeline needs:
// decoding page PNGs and scaling them to the published width.
package imaging

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// ResizeToWidth scales src to the given width, preserving aspect ratio with
// the nearest achievable integer height. Widths at or above the source
// width still go through the scaler so output is uniform.
func ResizeToWidth(src image.Image, width int) image.Image {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return src
	}
	height := (b.Dy()*width + b.Dx()/2) / b.Dx() // rounded, not truncated
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// ResizeFile reads the PNG at srcPath, scales it to width, and writes the
// result to dstPath.
func ResizeFile(srcPath, dstPath string, width int) error {
	in, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer func() { _ = in.Close() }()

	src, err := png.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", srcPath, err)
	}

	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", dstPath, err)
	}
	defer func() { _ = out.Close() }()

	if err := png.Encode(out, ResizeToWidth(src, width)); err != nil {
		return fmt.Errorf("encode %s: %w", dstPath, err)
	}
	return nil
}
