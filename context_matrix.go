package vg

import "golang.org/x/image/math/f32"

// Matrix operations act on the matrix selected by SetMatrixMode.

// LoadIdentity resets the current matrix.
func (c *Context) LoadIdentity() error {
	return call(c.e, "load identity", c.e.LoadIdentity)
}

// LoadMatrix replaces the current matrix. Matrices other than the path
// and glyph matrices ignore the last row.
func (c *Context) LoadMatrix(m Matrix) error {
	return call(c.e, "load matrix", func() { c.e.LoadMatrix(m.Wire()) })
}

// Matrix reads the current matrix.
func (c *Context) Matrix() (Matrix, error) {
	var w f32.Mat3
	if err := call(c.e, "get matrix", func() { c.e.GetMatrix(&w) }); err != nil {
		return Matrix{}, err
	}
	return MatrixFromWire(&w), nil
}

// MultMatrix right-multiplies the current matrix by m.
func (c *Context) MultMatrix(m Matrix) error {
	return call(c.e, "mult matrix", func() { c.e.MultMatrix(m.Wire()) })
}

func (c *Context) Translate(tx, ty float32) error {
	return call(c.e, "translate", func() { c.e.Translate(tx, ty) })
}

func (c *Context) Scale(sx, sy float32) error {
	return call(c.e, "scale", func() { c.e.Scale(sx, sy) })
}

func (c *Context) Shear(shx, shy float32) error {
	return call(c.e, "shear", func() { c.e.Shear(shx, shy) })
}

// Rotate rotates the current matrix counter-clockwise by degrees.
func (c *Context) Rotate(degrees float32) error {
	return call(c.e, "rotate", func() { c.e.Rotate(degrees) })
}

// RotateAbout rotates around the point (x, y).
func (c *Context) RotateAbout(degrees, x, y float32) error {
	if err := c.Translate(x, y); err != nil {
		return err
	}
	if err := c.Rotate(degrees); err != nil {
		return err
	}
	return c.Translate(-x, -y)
}
