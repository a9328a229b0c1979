package rastercodec

import "image"

// Raster is a decoded in-memory grid with an attached parameter bag.
// The framework never inspects grid contents; it only reads dimensions
// and annotates parameters.
type Raster interface {
	Width() int
	Height() int
	Params() *Params
}

// ImageRaster is a Raster backed by a decoded image.Image.
type ImageRaster struct {
	img    image.Image
	params *Params
}

// NewImageRaster wraps img with the given parameter bag. A nil bag is
// replaced with an empty one.
func NewImageRaster(img image.Image, params *Params) *ImageRaster {
	if params == nil {
		params = NewParams()
	}

	return &ImageRaster{img: img, params: params}
}

func (r *ImageRaster) Width() int {
	return r.img.Bounds().Dx()
}

func (r *ImageRaster) Height() int {
	return r.img.Bounds().Dy()
}

func (r *ImageRaster) Params() *Params {
	return r.params
}

// Image returns the backing image.
func (r *ImageRaster) Image() image.Image {
	return r.img
}
