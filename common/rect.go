package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box in world units with a top-left origin.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectAround returns a w by h box centered on c.
func RectAround(c cp.Vector, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports a strict overlap. Boxes that only share an edge do not
// intersect, so tiles laid side by side never collide with their neighbours.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Translate returns r moved by d.
func (r Rect) Translate(d cp.Vector) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Resized returns a box of the new size sharing r's center.
func (r Rect) Resized(w, h float64) Rect {
	return RectAround(r.Center(), w, h)
}

// Outside reports whether r lies entirely beyond the given bounds.
func (r Rect) Outside(width, height float64) bool {
	return r.X > width || r.Right() < 0 || r.Y > height || r.Bottom() < 0
}
