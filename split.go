package autogrid

// SplitHEqual splits r into n equal-width columns
// gap specifies spacing between columns, the last column absorbs any
// remainder from uneven division
func SplitHEqual(r Rect, n, gap int) []Rect {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Rect{r}
	}

	w, lastW := bandSize(r.W, n, gap)

	out := make([]Rect, n)
	x := 0
	for i := 0; i < n; i++ {
		cw := w
		if i == n-1 {
			cw = lastW
		}
		out[i] = r.Sub(x, 0, cw, r.H)
		x += cw + gap
	}
	return out
}

// SplitVEqual splits r into n equal-height rows
// gap specifies spacing between rows
func SplitVEqual(r Rect, n, gap int) []Rect {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Rect{r}
	}

	h, lastH := bandSize(r.H, n, gap)

	out := make([]Rect, n)
	y := 0
	for i := 0; i < n; i++ {
		ch := h
		if i == n-1 {
			ch = lastH
		}
		out[i] = r.Sub(0, y, r.W, ch)
		y += ch + gap
	}
	return out
}

// SplitHFixed splits with fixed left width, rest to right
func SplitHFixed(r Rect, leftW int) (left, right Rect) {
	if leftW > r.W {
		leftW = r.W
	}
	if leftW < 0 {
		leftW = 0
	}
	left = r.Sub(0, 0, leftW, r.H)
	right = r.Sub(leftW, 0, r.W-leftW, r.H)
	return
}

// SplitVFixed splits with fixed top height, rest to bottom
func SplitVFixed(r Rect, topH int) (top, bottom Rect) {
	if topH > r.H {
		topH = r.H
	}
	if topH < 0 {
		topH = 0
	}
	top = r.Sub(0, 0, r.W, topH)
	bottom = r.Sub(0, topH, r.W, r.H-topH)
	return
}
