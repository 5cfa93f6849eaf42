package document

import (
	"fmt"
	"time"
)

// Geometry is the page size and content frame, in mm. FooterBaseline is
// measured up from the bottom edge.
type Geometry struct {
	PageWidth      float64
	PageHeight     float64
	MarginTop      float64
	MarginLeft     float64
	MarginRight    float64
	MarginBottom   float64
	FooterBaseline float64
}

// A4 is the portrait A4 page used for every document.
var A4 = Geometry{
	PageWidth:      210,
	PageHeight:     297,
	MarginTop:      15,
	MarginLeft:     15,
	MarginRight:    15,
	MarginBottom:   20,
	FooterBaseline: 10,
}

// FrameWidth is the usable content width.
func (g Geometry) FrameWidth() float64 { return g.PageWidth - g.MarginLeft - g.MarginRight }

// FrameHeight is the usable content height.
func (g Geometry) FrameHeight() float64 { return g.PageHeight - g.MarginTop - g.MarginBottom }

// Footer holds the left and centre footer texts; the right side is always
// the page label.
type Footer struct {
	Left   string
	Centre string
}

const footerSize = 8.0

// pageTemplate draws the footer on every page. total is zero while the page
// count is still unknown.
type pageTemplate struct {
	geometry Geometry
	footer   Footer
	total    int
}

func pageLabel(page, total int) string {
	if total > 0 {
		return fmt.Sprintf("Page %d of %d", page, total)
	}
	return fmt.Sprintf("Page %d", page)
}

func (t pageTemplate) draw(c *Canvas) {
	g := t.geometry
	y := g.PageHeight - g.FooterBaseline
	c.setFont(false, false, footerSize)
	c.setTextColor(ColorGrey)

	if t.footer.Left != "" {
		c.text(g.MarginLeft, y, t.footer.Left)
	}
	if t.footer.Centre != "" {
		c.text((g.PageWidth-c.width(t.footer.Centre))/2, y, t.footer.Centre)
	}
	label := pageLabel(c.pdf.PageNo(), t.total)
	c.text(g.PageWidth-g.MarginRight-c.width(label), y, label)
}

// meta is the document information dictionary.
type meta struct {
	title   string
	creator string
	date    time.Time
}

// document is one pass over a story: a fresh canvas, a frame and a template.
type document struct {
	canvas   *Canvas
	geometry Geometry
	template pageTemplate
}

func newDocument(g Geometry, compress bool, tpl pageTemplate, m meta) *document {
	if m.date.IsZero() {
		m.date = time.Unix(0, 0).UTC()
	}
	c := newCanvas(g, compress)
	c.pdf.SetTitle(m.title, true)
	c.pdf.SetCreator(m.creator, true)
	c.pdf.SetCreationDate(m.date)
	c.pdf.SetModificationDate(m.date)
	c.pdf.SetFooterFunc(func() { tpl.draw(c) })
	return &document{canvas: c, geometry: g, template: tpl}
}

// build flows the story through the frame, breaking pages as needed, and
// returns the number of pages. Space before a flowable is dropped at the top
// of a page.
func (d *document) build(story []Flowable) (int, error) {
	var (
		g      = d.geometry
		c      = d.canvas
		width  = g.FrameWidth()
		top    = g.MarginTop
		bottom = g.PageHeight - g.MarginBottom
		y      = top
		fresh  = true
	)
	newPage := func() {
		c.pdf.AddPage()
		y = top
		fresh = true
	}
	newPage()

	queue := append([]Flowable(nil), story...)
	for len(queue) > 0 {
		f := queue[0]
		before, after := f.Spacing()
		start := y
		if !fresh {
			start += before
		}
		avail := bottom - start

		h := f.Wrap(c, width)
		if h <= avail+epsilon {
			f.Draw(c, g.MarginLeft, start, width)
			y = start + h + after
			fresh = false
			queue = queue[1:]
			continue
		}

		if _, ok := f.(*Spacer); ok {
			queue = queue[1:]
			newPage()
			continue
		}

		if avail > 0 {
			if head, tail, ok := f.Split(c, width, avail); ok {
				head.Draw(c, g.MarginLeft, start, width)
				queue[0] = tail
				newPage()
				continue
			}
		}

		if fresh {
			return 0, fmt.Errorf("%w: %T of height %.1fmm does not fit a %.1fmm frame",
				ErrLayout, f, h, g.FrameHeight())
		}
		newPage()
	}

	if err := c.pdf.Error(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	return c.pdf.PageCount(), nil
}
