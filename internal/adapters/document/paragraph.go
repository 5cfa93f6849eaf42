package document

const epsilon = 1e-6

type fragment struct {
	text   string
	bold   bool
	italic bool
	width  float64
}

type line struct {
	frags []fragment
	width float64
}

// Paragraph is wrapped text in one style with inline <b>, <i> and <br/>.
type Paragraph struct {
	text  string
	style Style

	lines     []line
	laidWidth float64
	laid      bool
	// fixed paragraphs are continuations whose lines were cut from a
	// parent; they are never re-wrapped.
	fixed bool
}

// NewParagraph creates a paragraph. Newlines in text are not breaks; pass the
// text through HardBreaks first when they should be.
func NewParagraph(text string, style Style) *Paragraph {
	return &Paragraph{text: text, style: style}
}

// Text returns the source markup.
func (p *Paragraph) Text() string { return p.text }

// Style returns the paragraph style.
func (p *Paragraph) Style() Style { return p.style }

// Lines returns the wrapped lines as plain text, after Wrap.
func (p *Paragraph) Lines() []string {
	out := make([]string, len(p.lines))
	for i, ln := range p.lines {
		for _, f := range ln.frags {
			out[i] += f.text
		}
	}
	return out
}

func (p *Paragraph) Wrap(c *Canvas, width float64) float64 {
	if !p.fixed && (!p.laid || p.laidWidth != width) {
		p.lines = p.layout(c, width)
		p.laid = true
		p.laidWidth = width
	}
	return float64(len(p.lines)) * Pt(p.style.Leading)
}

func (p *Paragraph) Split(c *Canvas, width, height float64) (Flowable, Flowable, bool) {
	p.Wrap(c, width)
	n := int((height + epsilon) / Pt(p.style.Leading))
	if n < 1 || n >= len(p.lines) {
		return nil, nil, false
	}
	headStyle, tailStyle := p.style, p.style
	headStyle.SpaceAfter = 0
	tailStyle.SpaceBefore = 0
	head := &Paragraph{text: p.text, style: headStyle, lines: p.lines[:n], laid: true, laidWidth: width, fixed: true}
	tail := &Paragraph{text: p.text, style: tailStyle, lines: p.lines[n:], laid: true, laidWidth: width, fixed: true}
	return head, tail, true
}

func (p *Paragraph) Draw(c *Canvas, x, y, width float64) {
	p.Wrap(c, width)
	leading := Pt(p.style.Leading)
	size := Pt(p.style.Size)
	c.setTextColor(p.style.Color)
	for i, ln := range p.lines {
		baseline := y + float64(i)*leading + (leading-size)/2 + size*0.8
		lx := x
		switch p.style.Align {
		case AlignCenter:
			lx += (width - ln.width) / 2
		case AlignRight:
			lx += width - ln.width
		}
		for _, f := range runsOf(ln.frags) {
			c.setFont(p.style.Bold || f.bold, p.style.Italic || f.italic, p.style.Size)
			c.text(lx, baseline, f.text)
			lx += f.width
		}
	}
}

// runsOf merges neighbouring fragments that share a font so each is drawn
// with a single text operation.
func runsOf(frags []fragment) []fragment {
	var out []fragment
	for _, f := range frags {
		if n := len(out); n > 0 && out[n-1].bold == f.bold && out[n-1].italic == f.italic {
			out[n-1].text += f.text
			out[n-1].width += f.width
			continue
		}
		out = append(out, f)
	}
	return out
}

func (p *Paragraph) Spacing() (float64, float64) {
	return Pt(p.style.SpaceBefore), Pt(p.style.SpaceAfter)
}

func (p *Paragraph) fragment(c *Canvas, text string, bold, italic bool) fragment {
	c.setFont(p.style.Bold || bold, p.style.Italic || italic, p.style.Size)
	return fragment{text: text, bold: bold, italic: italic, width: c.width(text)}
}

// layout wraps greedily. Words wider than the line are broken by rune.
func (p *Paragraph) layout(c *Canvas, width float64) []line {
	var (
		lines []line
		cur   line
	)
	for _, it := range splitWords(parseMarkup(p.text)) {
		if it.brk {
			lines = append(lines, cur)
			cur = line{}
			continue
		}

		frags := make([]fragment, len(it.pieces))
		var w float64
		for i, pc := range it.pieces {
			frags[i] = p.fragment(c, pc.text, pc.bold, pc.italic)
			w += frags[i].width
		}

		var space fragment
		if len(cur.frags) > 0 {
			last := cur.frags[len(cur.frags)-1]
			space = p.fragment(c, " ", last.bold, last.italic)
			if cur.width+space.width+w > width+epsilon {
				lines = append(lines, cur)
				cur = line{}
			}
		}

		if len(cur.frags) == 0 && w > width+epsilon {
			chunks := p.breakWord(c, frags, width)
			for _, ch := range chunks[:len(chunks)-1] {
				lines = append(lines, newLine(ch))
			}
			cur = newLine(chunks[len(chunks)-1])
			continue
		}

		if len(cur.frags) > 0 {
			cur.frags = append(cur.frags, space)
			cur.width += space.width
		}
		cur.frags = append(cur.frags, frags...)
		cur.width += w
	}
	if len(cur.frags) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func (p *Paragraph) breakWord(c *Canvas, frags []fragment, width float64) [][]fragment {
	var (
		chunks [][]fragment
		cur    []fragment
		curW   float64
	)
	for _, f := range frags {
		var buf []rune
		for _, r := range f.text {
			rw := p.fragment(c, string(r), f.bold, f.italic).width
			if curW+rw > width+epsilon && (len(cur) > 0 || len(buf) > 0) {
				if len(buf) > 0 {
					cur = append(cur, p.fragment(c, string(buf), f.bold, f.italic))
					buf = nil
				}
				chunks = append(chunks, cur)
				cur = nil
				curW = 0
			}
			buf = append(buf, r)
			curW += rw
		}
		if len(buf) > 0 {
			cur = append(cur, p.fragment(c, string(buf), f.bold, f.italic))
		}
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}

func newLine(frags []fragment) line {
	ln := line{frags: frags}
	for _, f := range frags {
		ln.width += f.width
	}
	return ln
}
