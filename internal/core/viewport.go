package core

// ToLogical converts a display-space coordinate to logical playfield space
// using the linear factor logical/displayed. A non-positive displayed extent
// maps everything to 0.
func ToLogical(display, displayed, logical float64) float64 {
	if displayed <= 0 {
		return 0
	}
	return display * (logical / displayed)
}

// ControlPosition maps a pointer x coordinate in display space to the left
// edge of a horizontally-controlled paddle or basket. The control is centered
// on the pointer and clamped to [0, logicalW-controlW].
func ControlPosition(displayX, displayedW, logicalW, controlW float64) float64 {
	x := ToLogical(displayX, displayedW, logicalW) - controlW/2
	return ClampF(x, 0, logicalW-controlW)
}

// Viewport maps a fixed logical playfield onto a grid of terminal cells.
type Viewport struct {
	LogicalW, LogicalH float64
	CellsW, CellsH     int
}

// NewViewport creates a viewport for the given playfield and cell grid.
func NewViewport(logicalW, logicalH float64, cellsW, cellsH int) Viewport {
	return Viewport{LogicalW: logicalW, LogicalH: logicalH, CellsW: cellsW, CellsH: cellsH}
}

// Cell converts a logical point to the cell containing it.
func (v Viewport) Cell(p Vec) (int, int) {
	if v.LogicalW <= 0 || v.LogicalH <= 0 {
		return 0, 0
	}
	x := int(p.X * float64(v.CellsW) / v.LogicalW)
	y := int(p.Y * float64(v.CellsH) / v.LogicalH)
	return x, y
}

// CellRect converts a logical rectangle to the cells it covers.
// Every non-empty rectangle covers at least one cell.
func (v Viewport) CellRect(r RectF) Rect {
	x0, y0 := v.Cell(Vec{X: r.X, Y: r.Y})
	x1, y1 := v.Cell(Vec{X: r.Right(), Y: r.Bottom()})
	w := x1 - x0
	h := y1 - y0
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return NewRect(x0, y0, w, h)
}

// Logical converts a cell position (e.g. a mouse event) to the logical point
// at the center of that cell.
func (v Viewport) Logical(cellX, cellY int) Vec {
	return Vec{
		X: ToLogical(float64(cellX)+0.5, float64(v.CellsW), v.LogicalW),
		Y: ToLogical(float64(cellY)+0.5, float64(v.CellsH), v.LogicalH),
	}
}
