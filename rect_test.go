package autogrid

import "testing"

// TestSubClipsToParent verifies out-of-bounds sub-rects are clipped
func TestSubClipsToParent(t *testing.T) {
	r := Rect{X: 5, Y: 5, W: 20, H: 10}

	sub := r.Sub(2, 3, 4, 5)
	want := Rect{X: 7, Y: 8, W: 4, H: 5}
	if sub != want {
		t.Errorf("Expected %+v, got %+v", want, sub)
	}

	// Negative origin shifts and shrinks
	sub = r.Sub(-3, -2, 10, 6)
	want = Rect{X: 5, Y: 5, W: 7, H: 4}
	if sub != want {
		t.Errorf("Expected %+v, got %+v", want, sub)
	}

	// Overflow clips to parent extent
	sub = r.Sub(15, 8, 10, 10)
	want = Rect{X: 20, Y: 13, W: 5, H: 2}
	if sub != want {
		t.Errorf("Expected %+v, got %+v", want, sub)
	}

	// Fully outside collapses to zero size
	sub = r.Sub(30, 20, 5, 5)
	if !sub.Empty() {
		t.Errorf("Expected empty rect, got %+v", sub)
	}
}

// TestInset verifies symmetric shrinking
func TestInset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 8}

	in := r.Inset(2)
	want := Rect{X: 2, Y: 2, W: 6, H: 4}
	if in != want {
		t.Errorf("Expected %+v, got %+v", want, in)
	}

	// Inset past the middle collapses
	if !r.Inset(5).Empty() {
		t.Errorf("Expected empty rect, got %+v", r.Inset(5))
	}
}

// TestCenter verifies centering within the parent
func TestCenter(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	c := r.Center(10, 4)
	want := Rect{X: 15, Y: 13, W: 10, H: 4}
	if c != want {
		t.Errorf("Expected %+v, got %+v", want, c)
	}

	// Oversized request clips to parent
	c = r.Center(40, 20)
	if c.W > r.W || c.H > r.H {
		t.Errorf("Expected centered rect within parent, got %+v", c)
	}
}

// TestEmpty verifies the zero-area predicate
func TestEmpty(t *testing.T) {
	if (Rect{W: 10, H: 10}).Empty() {
		t.Error("Expected 10x10 rect to be non-empty")
	}
	if !(Rect{W: 0, H: 10}).Empty() {
		t.Error("Expected zero-width rect to be empty")
	}
	if !(Rect{W: 10, H: 0}).Empty() {
		t.Error("Expected zero-height rect to be empty")
	}
}

// TestContains verifies full containment including shared edges
func TestContains(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}

	if !outer.Contains(Rect{X: 10, Y: 10, W: 20, H: 20}) {
		t.Error("Expected interior rect to be contained")
	}
	if !outer.Contains(outer) {
		t.Error("Expected rect to contain itself")
	}
	if !outer.Contains(Rect{X: 80, Y: 80, W: 20, H: 20}) {
		t.Error("Expected edge-touching rect to be contained")
	}
	if outer.Contains(Rect{X: 90, Y: 90, W: 20, H: 20}) {
		t.Error("Expected protruding rect to not be contained")
	}
	if outer.Contains(Rect{X: -1, Y: 0, W: 10, H: 10}) {
		t.Error("Expected rect left of origin to not be contained")
	}
}

// TestIntersects verifies overlap detection treats touching edges as disjoint
func TestIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	if !a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("Expected overlapping rects to intersect")
	}
	if a.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Error("Expected edge-adjacent rects to not intersect")
	}
	if a.Intersects(Rect{X: 20, Y: 20, W: 5, H: 5}) {
		t.Error("Expected distant rects to not intersect")
	}
	if a.Intersects(Rect{X: 5, Y: 5, W: 0, H: 10}) {
		t.Error("Expected empty rect to not intersect")
	}
}
