package camera

import (
	"context"
	"image"
	"image/color"
	"image/draw"
)

// StillDevice serves a fixed image as its video stream. It stands in for a
// camera when rendering previews without hardware.
type StillDevice struct {
	Image image.Image
	Torch bool
	Deny  bool
}

// NewStillDevice returns a device streaming img, or a neutral grey frame of
// the requested size when img is nil
func NewStillDevice(img image.Image) *StillDevice {
	return &StillDevice{Image: img}
}

func (d *StillDevice) Open(ctx context.Context, c Constraints) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.Deny {
		return nil, ErrPermissionDenied
	}
	img := d.Image
	if img == nil {
		grey := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
		draw.Draw(grey, grey.Bounds(), &image.Uniform{C: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}}, image.Point{}, draw.Src)
		img = grey
	}
	return &stillStream{img: img, torch: d.Torch && c.Facing == FacingBack}, nil
}

type stillStream struct {
	img     image.Image
	torch   bool
	stopped bool
}

func (s *stillStream) Frame() (image.Image, bool) {
	if s.stopped {
		return nil, false
	}
	return s.img, true
}

func (s *stillStream) TorchSupported() bool { return s.torch }

func (s *stillStream) SetTorch(bool) error {
	if !s.torch {
		return ErrTorchUnsupported
	}
	return nil
}

func (s *stillStream) Stop() { s.stopped = true }
