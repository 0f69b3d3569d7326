package cairo

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/cairo/engine"
)

// ImageFormat describes the pixel layout of a caller-supplied image
// buffer.
type ImageFormat int

const (
	// ImageRGB is opaque RGB, 3 bytes per pixel.
	ImageRGB ImageFormat = iota
	// ImageRGBASeparate is RGBA with straight (independent) alpha,
	// 4 bytes per pixel.
	ImageRGBASeparate
	// ImageRGBAPremul is RGBA already premultiplied by alpha, 4 bytes per
	// pixel.
	ImageRGBAPremul
)

// BytesPerPixel returns the source buffer's bytes per pixel, or 0 for an
// unknown format.
func (f ImageFormat) BytesPerPixel() int {
	switch f {
	case ImageRGB:
		return 3
	case ImageRGBASeparate, ImageRGBAPremul:
		return 4
	default:
		return 0
	}
}

// InterpolationMode selects the sampling filter used when an image is
// scaled during drawing.
type InterpolationMode int

const (
	NearestNeighbor InterpolationMode = iota
	Bilinear
)

// convertFilter maps the abstract interpolation enum onto the engine's
// pattern filter. Total.
func convertFilter(interp InterpolationMode) engine.Filter {
	if interp == Bilinear {
		return engine.FilterBilinear
	}
	return engine.FilterNearest
}

// Image is an engine-owned pixel surface in the engine's packed
// premultiplied ARGB format. It is created once by Context.MakeImage and
// immutable afterwards; draw operations read it as a composition source.
type Image struct {
	surface engine.ImageSurface
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.surface.Width() }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.surface.Height() }

// Surface returns the underlying engine surface.
func (img *Image) Surface() engine.ImageSurface { return img.surface }

// MakeImage converts a caller-supplied pixel buffer into an engine-owned
// surface in premultiplied ARGB.
//
// The buffer holds width*height pixels, tightly packed row-major, in the
// declared format. The destination may use a larger row stride than
// width*4; the conversion honors the stride the engine actually chose.
// Per format:
//
//   - ImageRGB: channels are reordered and alpha is set fully opaque.
//   - ImageRGBAPremul: channels are reordered, values copied unchanged.
//   - ImageRGBASeparate: each color channel is premultiplied by the pixel's
//     alpha with exact fixed-point rounding, then reordered.
//
// Any other format fails with ErrNotSupported before any allocation.
func (rc *Context) MakeImage(width, height int, buf []byte, format ImageFormat) (*Image, error) {
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("image format %d: %w", format, ErrNotSupported)
	}
	if need := width * height * bpp; len(buf) < need {
		return nil, fmt.Errorf("cairo: image buffer too short: have %d bytes, need %d", len(buf), need)
	}

	surface, err := rc.eng.Device().CreateImageSurface(engine.FormatARGB32, width, height)
	if err != nil {
		return nil, fmt.Errorf("cairo: create image surface: %w", err)
	}
	stride := surface.Stride()
	data, err := surface.Data()
	if err != nil {
		return nil, fmt.Errorf("%w: surface data: %v", ErrBorrowConflict, err)
	}
	logger().Debug("image surface created",
		"width", width, "height", height, "stride", stride, "format", format)

	bytesPerRow := width * bpp
	for y := 0; y < height; y++ {
		srcOff := y * bytesPerRow
		dstOff := y * stride
		switch format {
		case ImageRGB:
			for x := 0; x < width; x++ {
				data[dstOff+x*4+0] = buf[srcOff+x*3+2]
				data[dstOff+x*4+1] = buf[srcOff+x*3+1]
				data[dstOff+x*4+2] = buf[srcOff+x*3+0]
				data[dstOff+x*4+3] = 0xff
			}
		case ImageRGBAPremul:
			// Input is trusted to already be premultiplied; only the
			// channel order changes.
			for x := 0; x < width; x++ {
				data[dstOff+x*4+0] = buf[srcOff+x*4+2]
				data[dstOff+x*4+1] = buf[srcOff+x*4+1]
				data[dstOff+x*4+2] = buf[srcOff+x*4+0]
				data[dstOff+x*4+3] = buf[srcOff+x*4+3]
			}
		case ImageRGBASeparate:
			for x := 0; x < width; x++ {
				a := buf[srcOff+x*4+3]
				data[dstOff+x*4+0] = premultiply(buf[srcOff+x*4+2], a)
				data[dstOff+x*4+1] = premultiply(buf[srcOff+x*4+1], a)
				data[dstOff+x*4+2] = premultiply(buf[srcOff+x*4+0], a)
				data[dstOff+x*4+3] = a
			}
		}
	}
	surface.Flush()
	return &Image{surface: surface}, nil
}

// MakeImageFromImage converts a stdlib image.Image. NRGBA images convert
// directly as straight-alpha buffers; everything else is drawn into an
// NRGBA intermediate first.
func (rc *Context) MakeImageFromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Stride != w*4 || !b.Min.Eq(image.Point{}) {
		tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(tmp, tmp.Bounds(), src, b.Min, draw.Src)
		nrgba = tmp
	}
	return rc.MakeImage(w, h, nrgba.Pix, ImageRGBASeparate)
}
