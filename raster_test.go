package rastercodec

import (
	"image"
	"image/color"
	"testing"
)

func testImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 64, A: 255})
		}
	}

	return img
}

func TestImageRaster(t *testing.T) {
	t.Parallel()

	raster := NewImageRaster(testImage(4, 2), nil)

	if raster.Width() != 4 || raster.Height() != 2 {
		t.Fatalf("unexpected size: %dx%d", raster.Width(), raster.Height())
	}
	if raster.Params() == nil {
		t.Fatalf("nil params must be replaced with an empty bag")
	}
	if raster.Image() == nil {
		t.Fatalf("backing image must be exposed")
	}

	params := NewParams()
	params.Set(KeySector, "s")
	withBag := NewImageRaster(testImage(1, 1), params)
	if withBag.Params() != params {
		t.Fatalf("caller bag must be kept")
	}
}
