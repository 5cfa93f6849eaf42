package document

// Table is a grid of flowables with fixed column widths in mm. Cells are
// top-aligned; nil cells are empty.
type Table struct {
	widths []float64
	rows   [][]Flowable
	style  TableStyle

	heights   []float64
	laidWidth float64
	laid      bool
}

// NewTable creates a table.
func NewTable(widths []float64, rows [][]Flowable, style TableStyle) *Table {
	return &Table{widths: widths, rows: rows, style: style}
}

// Widths returns the column widths.
func (t *Table) Widths() []float64 { return t.widths }

// Rows returns the cell grid.
func (t *Table) Rows() [][]Flowable { return t.rows }

// TableStyle returns the table's style.
func (t *Table) TableStyle() TableStyle { return t.style }

// RowHeights returns the laid out row heights, after Wrap.
func (t *Table) RowHeights() []float64 { return t.heights }

func (t *Table) Wrap(c *Canvas, width float64) float64 {
	if !t.laid || t.laidWidth != width {
		t.heights = make([]float64, len(t.rows))
		for i, row := range t.rows {
			t.heights[i] = t.rowHeight(c, row)
		}
		t.laid = true
		t.laidWidth = width
	}
	var h float64
	for _, rh := range t.heights {
		h += rh
	}
	return h
}

func (t *Table) rowHeight(c *Canvas, row []Flowable) float64 {
	var content float64
	for j, cell := range row {
		if cell == nil || j >= len(t.widths) {
			continue
		}
		content = max(content, cell.Wrap(c, t.innerWidth(j)))
	}
	h := content + Pt(t.style.PadTop) + Pt(t.style.PadBottom)
	return max(h, t.style.MinRowHeight)
}

func (t *Table) innerWidth(col int) float64 {
	return t.widths[col] - Pt(t.style.PadLeft) - Pt(t.style.PadRight)
}

// Split breaks between rows. A repeated header travels with the tail; the
// head must keep at least one body row.
func (t *Table) Split(c *Canvas, width, height float64) (Flowable, Flowable, bool) {
	t.Wrap(c, width)
	header := min(t.style.HeaderRows, len(t.rows))

	var used float64
	for i := 0; i < header; i++ {
		used += t.heights[i]
	}
	n := header
	for n < len(t.rows) && used+t.heights[n] <= height+epsilon {
		used += t.heights[n]
		n++
	}
	if n == header || n == len(t.rows) {
		return nil, nil, false
	}

	head := &Table{widths: t.widths, rows: t.rows[:n], style: t.style}

	tailStyle := t.style
	tailRows := make([][]Flowable, 0, header+len(t.rows)-n)
	if t.style.RepeatHeader {
		tailRows = append(tailRows, t.rows[:header]...)
	} else {
		tailStyle.HeaderRows = 0
	}
	tailRows = append(tailRows, t.rows[n:]...)
	tail := &Table{widths: t.widths, rows: tailRows, style: tailStyle}
	return head, tail, true
}

func (t *Table) Draw(c *Canvas, x, y, width float64) {
	t.Wrap(c, width)
	cy := y
	for i, row := range t.rows {
		h := t.heights[i]

		if bg := t.rowBackground(i); bg != nil {
			cx := x
			for _, w := range t.widths {
				c.fillRect(cx, cy, w, h, *bg)
				cx += w
			}
		}

		cx := x
		for j, w := range t.widths {
			if j < len(row) && row[j] != nil {
				t.drawCell(c, row[j], j, cx, cy)
			}
			cx += w
		}

		if t.style.Grid > 0 {
			cx = x
			for _, w := range t.widths {
				c.strokeRect(cx, cy, w, h, Pt(t.style.Grid), t.style.GridColor)
				cx += w
			}
		}
		cy += h
	}
}

func (t *Table) drawCell(c *Canvas, cell Flowable, col int, x, y float64) {
	inner := t.innerWidth(col)
	cellX := x + Pt(t.style.PadLeft)
	if s, ok := cell.(sized); ok && col < len(t.style.ColAlign) {
		switch t.style.ColAlign[col] {
		case AlignCenter:
			cellX += (inner - s.NaturalWidth()) / 2
		case AlignRight:
			cellX += inner - s.NaturalWidth()
		}
	}
	cell.Draw(c, cellX, y+Pt(t.style.PadTop), inner)
}

func (t *Table) rowBackground(i int) *Color {
	if i < t.style.HeaderRows {
		return t.style.HeaderBackground
	}
	return t.style.Background
}

func (t *Table) Spacing() (float64, float64) { return 0, 0 }
