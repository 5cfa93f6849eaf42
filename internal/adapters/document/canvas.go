// Package document lays out flowables onto A4 pages and writes them as PDF.
//
// A story is an ordered list of Flowable values. The frame places them top to
// bottom, splitting paragraphs and tables across pages when they run past the
// bottom margin. Every page gets a footer drawn by the page template. The
// Renderer builds each story twice so the footer can carry the total page count.
package document

import (
	"github.com/jung-kurt/gofpdf"
)

const fontFamily = "Helvetica"

// Pt converts typographic points to millimetres.
func Pt(v float64) float64 { return v * 25.4 / 72 }

// Color is an RGB colour.
type Color struct {
	R, G, B int
}

// Canvas wraps the PDF engine with the handful of operations flowables use.
// Text is translated from UTF-8 to the core fonts' cp1252 encoding.
type Canvas struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newCanvas(g Geometry, compress bool) *Canvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(g.MarginLeft, g.MarginTop, g.MarginRight)
	// The frame decides page breaks.
	pdf.SetAutoPageBreak(false, g.MarginBottom)
	pdf.SetCompression(compress)
	pdf.SetCatalogSort(true)
	return &Canvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// NewMeasureCanvas returns a canvas suitable for measuring flowables without
// producing a document.
func NewMeasureCanvas() *Canvas {
	return newCanvas(A4, false)
}

func (c *Canvas) setFont(bold, italic bool, size float64) {
	style := ""
	if bold {
		style += "B"
	}
	if italic {
		style += "I"
	}
	c.pdf.SetFont(fontFamily, style, size)
}

func (c *Canvas) width(s string) float64 {
	return c.pdf.GetStringWidth(c.tr(s))
}

func (c *Canvas) text(x, y float64, s string) {
	c.pdf.Text(x, y, c.tr(s))
}

func (c *Canvas) setTextColor(col Color) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

func (c *Canvas) line(x1, y1, x2, y2, width float64, col Color) {
	c.pdf.SetLineWidth(width)
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *Canvas) strokeRect(x, y, w, h, width float64, col Color) {
	c.pdf.SetLineWidth(width)
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.Rect(x, y, w, h, "D")
}

func (c *Canvas) fillRect(x, y, w, h float64, col Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Rect(x, y, w, h, "F")
}
