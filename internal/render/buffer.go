package render

import "github.com/mkrell/showdeck/internal/render/core"

// ScreenBuffer is a width x height grid of cells representing one full
// frame of terminal content. The BufferManager keeps two of these: the
// current buffer mirrors what is on the terminal, the desired buffer is
// rendered fresh each frame.
type ScreenBuffer struct {
	width, height int
	cells         [][]core.Cell
}

// NewScreenBuffer creates a buffer fully initialized to blank cells.
// Non-positive dimensions yield an empty buffer that drops all writes.
func NewScreenBuffer(width, height int) *ScreenBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	sb := &ScreenBuffer{width: width, height: height}
	sb.cells = make([][]core.Cell, height)
	for y := 0; y < height; y++ {
		sb.cells[y] = make([]core.Cell, width)
		for x := 0; x < width; x++ {
			sb.cells[y][x] = core.EmptyCell()
		}
	}
	return sb
}

// Size returns the buffer dimensions.
func (sb *ScreenBuffer) Size() (width, height int) {
	return sb.width, sb.height
}

// Clear resets every cell to blank in place.
func (sb *ScreenBuffer) Clear() {
	sb.Fill(core.EmptyCell())
}

// Fill sets every cell to the given cell.
func (sb *ScreenBuffer) Fill(cell core.Cell) {
	for y := 0; y < sb.height; y++ {
		for x := 0; x < sb.width; x++ {
			sb.cells[y][x] = cell
		}
	}
}

// SetCell sets the cell at (x, y). Out-of-bounds writes are silently
// dropped: layout arithmetic elsewhere may transiently compute
// out-of-range coordinates for partially visible content.
func (sb *ScreenBuffer) SetCell(x, y int, cell core.Cell) {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return
	}
	sb.cells[y][x] = cell
}

// GetCell returns the cell at (x, y).
// Returns a blank cell for out-of-bounds coordinates.
func (sb *ScreenBuffer) GetCell(x, y int) core.Cell {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return core.EmptyCell()
	}
	return sb.cells[y][x]
}

// DiffersAt returns true iff the cell at (x, y) differs between the two
// buffers by full cell equality. Out-of-bounds coordinates never differ.
func (sb *ScreenBuffer) DiffersAt(other *ScreenBuffer, x, y int) bool {
	if x < 0 || x >= sb.width || y < 0 || y >= sb.height {
		return false
	}
	return !sb.GetCell(x, y).Equals(other.GetCell(x, y))
}

// CopyFrom makes this buffer equal to the other buffer cell by cell.
// Both buffers must have the same dimensions; mismatched regions are
// ignored.
func (sb *ScreenBuffer) CopyFrom(other *ScreenBuffer) {
	for y := 0; y < sb.height && y < other.height; y++ {
		copy(sb.cells[y], other.cells[y])
	}
}
