// FILE: doc.go
// Package autogrid arranges a fixed number of items in an automatic
// near-square grid within a rectangular terminal area.
//
// Core entry point is AutoGrid: given an area, an item count, and a
// spacing value, it picks a grid shape via a square-root heuristic and
// returns exactly count cell rects in row-major order, with uniform
// gaps between neighbors and no gaps at the outer edges. Callers never
// configure rows or columns; adding or removing an item relayouts the
// whole grid.
//
// Design principles:
//   - Pure arithmetic over value types: no state, no I/O, safe to call
//     from any goroutine without coordination
//   - Total: pathological inputs (oversized spacing, tiny areas) degrade
//     to zero-size cells, never errors or panics
//   - Framework-agnostic: Rect converts trivially to any TUI toolkit's
//     rectangle type
//
// Usage pattern:
//
//	w, h := screen.Size()
//	cells := autogrid.AutoGrid(autogrid.Rect{W: w, H: h}, len(panels), 1)
//	for i, p := range panels {
//	    p.Draw(screen, cells[i])
//	}
package autogrid
