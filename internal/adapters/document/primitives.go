package document

// Checkbox geometry in points.
const (
	checkboxSize     = 10.0
	checkboxPitch    = 12.0
	checkboxesPerRow = 6
)

// Flowable is one element of a story.
type Flowable interface {
	// Wrap lays the flowable out for width (mm) and returns its height (mm).
	Wrap(c *Canvas, width float64) float64
	// Split cuts the flowable so the head fits in height. ok is false when
	// it cannot be split there.
	Split(c *Canvas, width, height float64) (head, tail Flowable, ok bool)
	// Draw renders at the top-left corner (x, y).
	Draw(c *Canvas, x, y, width float64)
	// Spacing returns the space before and after, in mm.
	Spacing() (before, after float64)
}

// sized is implemented by drawings with an intrinsic width.
type sized interface {
	NaturalWidth() float64
}

// Checkbox is a single 10x10pt box, optionally ticked.
type Checkbox struct {
	Checked bool
}

func (b *Checkbox) Wrap(*Canvas, float64) float64 { return Pt(checkboxSize) }

func (b *Checkbox) Split(*Canvas, float64, float64) (Flowable, Flowable, bool) {
	return nil, nil, false
}

func (b *Checkbox) Draw(c *Canvas, x, y, _ float64) { drawCheckbox(c, x, y, b.Checked) }

func (b *Checkbox) Spacing() (float64, float64) { return 0, 0 }

func (b *Checkbox) NaturalWidth() float64 { return Pt(checkboxSize) }

// drawCheckbox maps the box's point-space drawing, whose origin is the
// bottom-left corner, onto the page.
func drawCheckbox(c *Canvas, x, y float64, checked bool) {
	at := func(px, py float64) (float64, float64) {
		return x + Pt(px), y + Pt(checkboxSize-py)
	}
	c.strokeRect(x+Pt(1), y+Pt(1), Pt(8), Pt(8), Pt(1), ColorBlack)
	if checked {
		x1, y1 := at(2, 5)
		x2, y2 := at(4, 3)
		x3, y3 := at(8, 8)
		c.line(x1, y1, x2, y2, Pt(1.5), ColorBlack)
		c.line(x2, y2, x3, y3, Pt(1.5), ColorBlack)
	}
}

// Slot is a box position in a checkbox grid; row 0 is the top row.
type Slot struct {
	Col, Row int
}

// CheckboxRow is a run of empty boxes: one row up to six, then a grid six
// wide filled top to bottom.
type CheckboxRow struct {
	count int
}

// NewCheckboxRow creates a row of count boxes. Counts below one become one.
func NewCheckboxRow(count int) *CheckboxRow {
	return &CheckboxRow{count: max(count, 1)}
}

// Count returns the number of boxes.
func (r *CheckboxRow) Count() int { return r.count }

// Rows returns the number of grid rows.
func (r *CheckboxRow) Rows() int {
	return (r.count + checkboxesPerRow - 1) / checkboxesPerRow
}

// Slots returns each box's grid position, box 0 first.
func (r *CheckboxRow) Slots() []Slot {
	slots := make([]Slot, r.count)
	for i := range slots {
		slots[i] = Slot{Col: i % checkboxesPerRow, Row: i / checkboxesPerRow}
	}
	return slots
}

func (r *CheckboxRow) NaturalWidth() float64 {
	cols := min(r.count, checkboxesPerRow)
	return Pt(float64(cols-1)*checkboxPitch + checkboxSize)
}

func (r *CheckboxRow) Wrap(*Canvas, float64) float64 {
	return Pt(float64(r.Rows()-1)*checkboxPitch + checkboxSize)
}

func (r *CheckboxRow) Split(*Canvas, float64, float64) (Flowable, Flowable, bool) {
	return nil, nil, false
}

func (r *CheckboxRow) Draw(c *Canvas, x, y, _ float64) {
	for _, s := range r.Slots() {
		drawCheckbox(c, x+Pt(float64(s.Col)*checkboxPitch), y+Pt(float64(s.Row)*checkboxPitch), false)
	}
}

func (r *CheckboxRow) Spacing() (float64, float64) { return 0, 0 }

// Rule is a full-width horizontal line. Thickness is in points, spacing in mm.
type Rule struct {
	Thickness   float64
	Color       Color
	SpaceBefore float64
	SpaceAfter  float64
}

// HandwritingRule is the thin grey line used for notes written by hand.
func HandwritingRule() *Rule {
	return &Rule{Thickness: 0.5, Color: ColorGrey, SpaceAfter: 5}
}

// Divider separates entries in a list.
func Divider() *Rule {
	return &Rule{Thickness: 1, Color: ColorAccent, SpaceAfter: 5}
}

func (r *Rule) Wrap(*Canvas, float64) float64 { return Pt(r.Thickness) }

func (r *Rule) Split(*Canvas, float64, float64) (Flowable, Flowable, bool) {
	return nil, nil, false
}

func (r *Rule) Draw(c *Canvas, x, y, width float64) {
	mid := y + Pt(r.Thickness)/2
	c.line(x, mid, x+width, mid, Pt(r.Thickness), r.Color)
}

func (r *Rule) Spacing() (float64, float64) { return r.SpaceBefore, r.SpaceAfter }

// Spacer is vertical whitespace in mm. A spacer that does not fit at the
// bottom of a page is dropped.
type Spacer struct {
	Height float64
}

func (s *Spacer) Wrap(*Canvas, float64) float64 { return s.Height }

func (s *Spacer) Split(*Canvas, float64, float64) (Flowable, Flowable, bool) {
	return nil, nil, false
}

func (s *Spacer) Draw(*Canvas, float64, float64, float64) {}

func (s *Spacer) Spacing() (float64, float64) { return 0, 0 }
