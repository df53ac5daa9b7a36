package geometry

import "fmt"

// NoNeighbor is returned by Mapper.Adjacent when a step would leave the
// padded rectangle.
const NoNeighbor = -1

// GridSize describes the logical grid and the padding around it.
// Cells are numbered row-major in both spaces:
//
//	relative: row*Columns + col                          (logical area only)
//	absolute: (row+Padding.Up)*AbsoluteColumns() + (col+Padding.Left)
type GridSize struct {
	Rows    int
	Columns int
	Padding DirectionVector
}

// NewGridSize creates a grid size without padding.
func NewGridSize(rows, columns int) GridSize {
	return GridSize{Rows: rows, Columns: columns}
}

// AbsoluteRows returns the row count including padding.
func (s GridSize) AbsoluteRows() int {
	return s.Rows + s.Padding.Up + s.Padding.Down
}

// AbsoluteColumns returns the column count including padding.
func (s GridSize) AbsoluteColumns() int {
	return s.Columns + s.Padding.Left + s.Padding.Right
}

// CellCount returns the number of logical cells.
func (s GridSize) CellCount() int {
	return s.Rows * s.Columns
}

// AbsoluteCellCount returns the number of cells including padding.
func (s GridSize) AbsoluteCellCount() int {
	return s.AbsoluteRows() * s.AbsoluteColumns()
}

// Mapper converts between cell indices and pixel geometry.
// It is an immutable value; the offset methods return new mappers.
type Mapper struct {
	CellSize float64 // Pixel size of one cell
	Margin   float64 // Pixel margin around the padded area
	Size     GridSize
}

// NewMapper creates a mapper for the given cell size, margin and grid size.
func NewMapper(cellSize, margin float64, size GridSize) Mapper {
	return Mapper{CellSize: cellSize, Margin: margin, Size: size}
}

// String returns a compact description of the mapper.
func (m Mapper) String() string {
	p := m.Size.Padding
	return fmt.Sprintf("%dx%d pad(%d,%d,%d,%d) cell=%g margin=%g",
		m.Size.Rows, m.Size.Columns, p.Up, p.Down, p.Left, p.Right, m.CellSize, m.Margin)
}

// ToAbsolute converts a relative index into an absolute index.
func (m Mapper) ToAbsolute(relative int) int {
	row, col := relative/m.Size.Columns, relative%m.Size.Columns
	return (row+m.Size.Padding.Up)*m.Size.AbsoluteColumns() + col + m.Size.Padding.Left
}

// ToRelative converts an absolute index into a relative index.
// It is the exact inverse of ToAbsolute for in-range relative indices.
func (m Mapper) ToRelative(absolute int) int {
	cols := m.Size.AbsoluteColumns()
	row, col := absolute/cols-m.Size.Padding.Up, absolute%cols-m.Size.Padding.Left
	return row*m.Size.Columns + col
}

// ToAbsoluteOffset converts a relative index and then steps offset whole
// cells in dir. A negative offset steps the other way.
func (m Mapper) ToAbsoluteOffset(relative int, dir Direction, offset int) int {
	if offset < 0 {
		offset, dir = -offset, dir.Opposite()
	}
	dr, dc := dir.Delta()
	return m.ToAbsolute(relative) + offset*(dr*m.Size.AbsoluteColumns()+dc)
}

// RowColumn splits an absolute index into its absolute row and column.
func (m Mapper) RowColumn(absolute int) (row, col int) {
	cols := m.Size.AbsoluteColumns()
	return absolute / cols, absolute % cols
}

// AbsoluteIndex joins an absolute row and column.
func (m Mapper) AbsoluteIndex(row, col int) int {
	return row*m.Size.AbsoluteColumns() + col
}

// RelativeCell returns the relative index of the cell at absolute (row, col)
// and whether that cell lies inside the logical area.
func (m Mapper) RelativeCell(row, col int) (int, bool) {
	r, c := row-m.Size.Padding.Up, col-m.Size.Padding.Left
	if r < 0 || r >= m.Size.Rows || c < 0 || c >= m.Size.Columns {
		return 0, false
	}
	return r*m.Size.Columns + c, true
}

// InRelativeBounds reports whether relative is a logical cell.
func (m Mapper) InRelativeBounds(relative int) bool {
	return relative >= 0 && relative < m.Size.CellCount()
}

// InAbsoluteBounds reports whether absolute lies inside the padded rectangle.
func (m Mapper) InAbsoluteBounds(absolute int) bool {
	return absolute >= 0 && absolute < m.Size.AbsoluteCellCount()
}

// Adjacent returns the absolute neighbor of absolute in dir. Without wrap a
// step off the padded rectangle yields NoNeighbor; with wrap it re-enters on
// the opposite edge.
func (m Mapper) Adjacent(absolute int, dir Direction, wrap bool) int {
	rows, cols := m.Size.AbsoluteRows(), m.Size.AbsoluteColumns()
	row, col := absolute/cols, absolute%cols
	dr, dc := dir.Delta()
	nr, nc := row+dr, col+dc
	if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
		if !wrap {
			return NoNeighbor
		}
		nr = (nr + rows) % rows
		nc = (nc + cols) % cols
	}
	return nr*cols + nc
}

// Point returns the pixel point of an absolute cell at the given alignment.
func (m Mapper) Point(absolute int, align Alignment) Point {
	fx, fy := align.factors()
	row, col := m.RowColumn(absolute)
	return Point{
		X: m.Margin + m.CellSize*float64(col) + fx*m.CellSize,
		Y: m.Margin + m.CellSize*float64(row) + fy*m.CellSize,
	}
}

// CellRect returns the pixel rectangle of an absolute cell.
func (m Mapper) CellRect(absolute int) Rect {
	tl := m.Point(absolute, AlignTopLeft)
	return Rect{X: tl.X, Y: tl.Y, W: m.CellSize, H: m.CellSize}
}

// CandidatePosition addresses one sub-cell of a cell split into Split×Split parts.
type CandidatePosition struct {
	Cell  int // Absolute cell index
	Split int // Sub-grid split factor n
	Inner int // Index in [0, n*n), row-major
}

// Candidate creates a candidate position.
func Candidate(cell, split, inner int) CandidatePosition {
	return CandidatePosition{Cell: cell, Split: split, Inner: inner}
}

// CandidatePoint returns the pixel point of a candidate sub-cell.
func (m Mapper) CandidatePoint(pos CandidatePosition, align Alignment) Point {
	fx, fy := align.factors()
	sub := m.CellSize / float64(pos.Split)
	tl := m.Point(pos.Cell, AlignTopLeft)
	r, c := pos.Inner/pos.Split, pos.Inner%pos.Split
	return Point{
		X: tl.X + sub*float64(c) + fx*sub,
		Y: tl.Y + sub*float64(r) + fy*sub,
	}
}

// CandidateRect returns the pixel rectangle of a candidate sub-cell.
func (m Mapper) CandidateRect(pos CandidatePosition) Rect {
	sub := m.CellSize / float64(pos.Split)
	tl := m.CandidatePoint(pos, AlignTopLeft)
	return Rect{X: tl.X, Y: tl.Y, W: sub, H: sub}
}

// EdgePoints returns the endpoints of one edge of an absolute cell.
// Panics if dir is not a single direction.
func (m Mapper) EdgePoints(absolute int, dir Direction) (Point, Point) {
	switch dir {
	case Up:
		return m.Point(absolute, AlignTopLeft), m.Point(absolute, AlignTopRight)
	case Down:
		return m.Point(absolute, AlignBottomLeft), m.Point(absolute, AlignBottomRight)
	case Left:
		return m.Point(absolute, AlignTopLeft), m.Point(absolute, AlignBottomLeft)
	case Right:
		return m.Point(absolute, AlignTopRight), m.Point(absolute, AlignBottomRight)
	default:
		panic(fmt.Sprintf("geometry: edge of non-single direction %v", dir))
	}
}

// LogicalRect returns the pixel rectangle covering the logical area.
func (m Mapper) LogicalRect() Rect {
	tl := m.Point(m.ToAbsolute(0), AlignTopLeft)
	return Rect{
		X: tl.X,
		Y: tl.Y,
		W: m.CellSize * float64(m.Size.Columns),
		H: m.CellSize * float64(m.Size.Rows),
	}
}

// Width returns the pixel width of the padded area plus both margins.
func (m Mapper) Width() float64 {
	return 2*m.Margin + m.CellSize*float64(m.Size.AbsoluteColumns())
}

// Height returns the pixel height of the padded area plus both margins.
func (m Mapper) Height() float64 {
	return 2*m.Margin + m.CellSize*float64(m.Size.AbsoluteRows())
}

// WithOffset returns a copy of m with its padding replaced by v.
func (m Mapper) WithOffset(v DirectionVector) Mapper {
	m.Size.Padding = v
	return m
}

// AddOffset returns a copy of m with v added to its padding.
func (m Mapper) AddOffset(v DirectionVector) Mapper {
	m.Size.Padding = m.Size.Padding.Add(v)
	return m
}

// LineSegment is an absolute cell plus the edges to draw around it.
type LineSegment struct {
	Cell       int
	Directions Direction
}
