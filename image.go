package vg

import (
	"encoding/binary"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ImageSource is an image usable as a pattern, mask or copy source: an
// *Image or an *ImageRef.
type ImageSource interface {
	Object
	image() *imageView
}

// imageView is the accessor set shared by owned and borrowed images.
type imageView struct {
	ctx *Context
	ref handleRef
}

func (v *imageView) image() *imageView { return v }

// Handle returns the engine handle, or InvalidHandle after Destroy.
func (v *imageView) Handle() Handle { return handleOf(v.ref) }

// Params returns generic access to the image parameters.
func (v *imageView) Params() (*Params, error) {
	h, err := v.ref.handle()
	if err != nil {
		return nil, err
	}
	return newObjectParams(ImageParams, v.ctx.e, h), nil
}

func imageParam[T any](v *imageView, get func(*Params, ParamID) (T, error), id ParamID) (T, error) {
	p, err := v.Params()
	if err != nil {
		var zero T
		return zero, err
	}
	return get(p, id)
}

func (v *imageView) Format() (ImageFormat, error) {
	return imageParam(v, getEnum[ImageFormat], ImageParamFormat)
}

func (v *imageView) Width() (int, error) {
	return imageParam(v, getInt, ImageParamWidth)
}

func (v *imageView) Height() (int, error) {
	return imageParam(v, getInt, ImageParamHeight)
}

// Clear fills a rectangle of the image with the clear color.
func (v *imageView) Clear(x, y, width, height int) error {
	h, err := v.ref.handle()
	if err != nil {
		return err
	}
	e := v.ctx.e
	return call(e, "clear image", func() {
		e.ClearImage(h, int32(x), int32(y), int32(width), int32(height))
	})
}

// SubData writes pixels in format into a rectangle of the image.
func (v *imageView) SubData(data []byte, stride int, format ImageFormat, x, y, width, height int) error {
	h, err := v.ref.handle()
	if err != nil {
		return err
	}
	if err := checkPixels(data, stride, height); err != nil {
		return err
	}
	e := v.ctx.e
	return call(e, "image sub data", func() {
		e.ImageSubData(h, data, int32(stride), format, int32(x), int32(y), int32(width), int32(height))
	})
}

// ReadSubData reads a rectangle of the image into data, converted to
// format.
func (v *imageView) ReadSubData(data []byte, stride int, format ImageFormat, x, y, width, height int) error {
	h, err := v.ref.handle()
	if err != nil {
		return err
	}
	if err := checkPixels(data, stride, height); err != nil {
		return err
	}
	e := v.ctx.e
	return call(e, "get image sub data", func() {
		e.GetImageSubData(h, data, int32(stride), format, int32(x), int32(y), int32(width), int32(height))
	})
}

func checkPixels(data []byte, stride, height int) error {
	if stride < 0 || height < 0 {
		return fmt.Errorf("%w: stride %d, height %d", ErrShape, stride, height)
	}
	if height > 0 && len(data) < stride*(height-1)+1 {
		return fmt.Errorf("%w: %d bytes for %d rows of stride %d", ErrShape, len(data), height, stride)
	}
	return nil
}

// nrgbaFormat is the engine format whose memory layout matches
// image.NRGBA (bytes R, G, B, A) on this machine.
var nrgbaFormat = func() ImageFormat {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return SABGR8888
	}
	return SRGBA8888
}()

// Upload converts src to non-premultiplied 8-bit RGBA and writes it with
// its top-left corner at (x, y) of the image.
func (v *imageView) Upload(src image.Image, x, y int) error {
	b := src.Bounds()
	dst, ok := src.(*image.NRGBA)
	if !ok {
		dst = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	}
	pix := dst.Pix[dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y):]
	return v.SubData(pix, dst.Stride, nrgbaFormat, x, y, b.Dx(), b.Dy())
}

// UploadScaled resamples src to width x height with bilinear filtering
// and writes it with its top-left corner at (x, y) of the image.
func (v *imageView) UploadScaled(src image.Image, x, y, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: upload size %dx%d", ErrShape, width, height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return v.Upload(dst, x, y)
}

// Snapshot reads the whole image as non-premultiplied 8-bit RGBA.
func (v *imageView) Snapshot() (*image.NRGBA, error) {
	w, err := v.Width()
	if err != nil {
		return nil, err
	}
	h, err := v.Height()
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if err := v.ReadSubData(dst.Pix, dst.Stride, nrgbaFormat, 0, 0, w, h); err != nil {
		return nil, err
	}
	return dst, nil
}

// Child creates an image sharing a rectangle of this image's pixels. The
// child is owned and must be destroyed.
func (v *imageView) Child(x, y, width, height int) (*Image, error) {
	h, err := v.ref.handle()
	if err != nil {
		return nil, err
	}
	e := v.ctx.e
	ch, err := callValue(e, "child image", func() Handle {
		return e.ChildImage(h, int32(x), int32(y), int32(width), int32(height))
	})
	if err != nil {
		return nil, err
	}
	return newImage(v.ctx, ch), nil
}

// Parent returns the image this one was cut from, or the image itself
// when it has no parent. The result is borrowed.
func (v *imageView) Parent() (*ImageRef, error) {
	h, err := v.ref.handle()
	if err != nil {
		return nil, err
	}
	e := v.ctx.e
	ph, err := callValue(e, "get parent", func() Handle { return e.GetParent(h) })
	if err != nil {
		return nil, err
	}
	return &ImageRef{imageView{ctx: v.ctx, ref: v.ctx.borrow(ph)}}, nil
}

// CopyFrom copies a rectangle of src at (sx, sy) to (dx, dy).
func (v *imageView) CopyFrom(src ImageSource, dx, dy, sx, sy, width, height int, dither bool) error {
	h, err := v.ref.handle()
	if err != nil {
		return err
	}
	sh, err := imageHandle(src)
	if err != nil {
		return err
	}
	if sh == InvalidHandle {
		return fmt.Errorf("%w: nil copy source", ErrShape)
	}
	e := v.ctx.e
	return call(e, "copy image", func() {
		e.CopyImage(h, int32(dx), int32(dy), sh, int32(sx), int32(sy), int32(width), int32(height), dither)
	})
}

// Draw draws the image through the image-user-to-surface matrix.
func (v *imageView) Draw() error {
	h, err := v.ref.handle()
	if err != nil {
		return err
	}
	e := v.ctx.e
	return call(e, "draw image", func() { e.DrawImage(h) })
}

// Image is an owned engine image object.
type Image struct {
	imageView
	own *owner
}

// NewImage creates an image. quality names the resampling qualities the
// image may be drawn with, from ImageQualityNames.
func NewImage(ctx *Context, format ImageFormat, width, height int, quality BitMask) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrShape, width, height)
	}
	e := ctx.e
	h, err := callValue(e, "create image", func() Handle {
		return e.CreateImage(format, int32(width), int32(height), quality.Int())
	})
	if err != nil {
		return nil, err
	}
	return newImage(ctx, h), nil
}

func newImage(ctx *Context, h Handle) *Image {
	own := newOwner(ctx, h, "image", Engine.DestroyImage)
	return &Image{imageView: imageView{ctx: ctx, ref: own}, own: own}
}

// Destroy releases the image. Calling Destroy again does nothing.
func (img *Image) Destroy() error { return img.own.destroy() }

func (img *Image) image() *imageView {
	if img == nil {
		return nil
	}
	return &img.imageView
}

func (img *Image) maskHandle() (Handle, error) { return imageHandle(img) }

// ImageRef is an image observed through Parent. It is not owned and cannot
// be destroyed.
type ImageRef struct {
	imageView
}

func (r *ImageRef) image() *imageView {
	if r == nil {
		return nil
	}
	return &r.imageView
}

func (r *ImageRef) maskHandle() (Handle, error) { return imageHandle(r) }

// imageHandle resolves the image behind img. A nil img, typed or not,
// resolves to InvalidHandle.
func imageHandle(img ImageSource) (Handle, error) {
	if img == nil {
		return InvalidHandle, nil
	}
	v := img.image()
	if v == nil {
		return InvalidHandle, nil
	}
	return v.ref.handle()
}
