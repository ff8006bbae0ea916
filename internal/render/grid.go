package render

// Cell represents a single character cell of a text frontend.
type Cell struct {
	Glyph rune
	FG    uint8 // palette index
	BG    uint8 // palette index
}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

var blankCell = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph rune, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return blankCell
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	b.Fill(ColorBlack)
}

// Fill resets all cells to spaces on background bg.
func (b *CellBuffer) Fill(bg uint8) {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: bg}
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		b.Set(x+offset, y, ch, fg, bg)
		offset++
	}
}

// Row returns the glyphs of row y as a string.
func (b *CellBuffer) Row(y int) string {
	if y < 0 || y >= b.Rows {
		return ""
	}
	runes := make([]rune, b.Cols)
	for x := range runes {
		runes[x] = b.Cells[y*b.Cols+x].Glyph
	}
	return string(runes)
}
