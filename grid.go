package autogrid

import "math"

// Shape returns the near-square grid dimensions for n items.
// Columns are rounded up from the square root first, so cols >= rows
// and rows*cols >= n always. Returns (0, 0) for n <= 0
func Shape(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}

	cols = int(math.Ceil(math.Sqrt(float64(n))))
	// Float sqrt can land on either side of an exact root
	for cols*cols < n {
		cols++
	}
	for cols > 1 && (cols-1)*(cols-1) >= n {
		cols--
	}

	rows = (n + cols - 1) / cols
	return rows, cols
}

// AutoGrid splits area into a near-square grid and returns exactly n
// cell rects in row-major order, with spacing cells between neighbors
// and no spacing at the outer edges. When the grid shape has more
// slots than items the trailing slots of the last row are discarded.
// Uneven division leaves the remainder on the last column and row.
//
// Total over its inputs: spacing larger than the area degrades to
// zero-size cells rather than an error, and n is always honored
func AutoGrid(area Rect, n, spacing int) []Rect {
	if n <= 0 {
		return nil
	}
	rows, cols := Shape(n)
	return gridCells(area, rows, cols, spacing, n)
}

// Grid splits area into an explicit rows x cols grid and returns all
// rows*cols rects in row-major order. Shares AutoGrid's band sizing,
// so Grid(area, r, c, s) and AutoGrid(area, r*c, s) agree whenever
// the shape heuristic would pick (r, c)
func Grid(area Rect, rows, cols, spacing int) []Rect {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	return gridCells(area, rows, cols, spacing, rows*cols)
}

// gridCells emits up to limit cells of a rows x cols partition in
// row-major order
func gridCells(area Rect, rows, cols, spacing, limit int) []Rect {
	colW, lastW := bandSize(area.W, cols, spacing)
	rowH, lastH := bandSize(area.H, rows, spacing)

	cells := make([]Rect, 0, limit)
	for row := 0; row < rows; row++ {
		h := rowH
		if row == rows-1 {
			h = lastH
		}
		for col := 0; col < cols; col++ {
			if len(cells) == limit {
				return cells
			}
			w := colW
			if col == cols-1 {
				w = lastW
			}
			x := col * (colW + spacing)
			y := row * (rowH + spacing)
			cells = append(cells, area.Sub(x, y, w, h))
		}
	}
	return cells
}

// bandSize divides extent into n bands separated by spacing-wide gaps.
// The first n-1 bands get the integer quotient, the last absorbs the
// remainder so the bands fill extent exactly. Sizes clamp at zero when
// the gaps alone exceed extent
func bandSize(extent, n, spacing int) (size, last int) {
	avail := extent - spacing*(n-1)
	size = avail / n
	if size < 0 {
		size = 0
	}
	last = avail - size*(n-1)
	if last < 0 {
		last = 0
	}
	return size, last
}
