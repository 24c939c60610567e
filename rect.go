package autogrid

// Rect is an axis-aligned rectangle on the terminal cell grid
// X, Y is the top-left corner, W and H are non-negative extents
type Rect struct {
	X, Y int
	W, H int
}

// Sub returns a nested rect with coordinates relative to r, result is clipped to r's bounds
func (r Rect) Sub(x, y, w, h int) Rect {
	// Clip to parent bounds
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Rect{
		X: r.X + x,
		Y: r.Y + y,
		W: w,
		H: h,
	}
}

// Inset returns a rect shrunk by n cells on all sides
func (r Rect) Inset(n int) Rect {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Center returns a centered rect of given size within r
func (r Rect) Center(w, h int) Rect {
	return r.Sub((r.W-w)/2, (r.H-h)/2, w, h)
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the exclusive right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether o lies entirely within r
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o share at least one cell
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}
