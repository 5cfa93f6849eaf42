package document

import (
	"strings"
	"unicode"
)

// run is a stretch of text sharing one inline style, or a hard break.
type run struct {
	text   string
	bold   bool
	italic bool
	brk    bool
}

type tag int

const (
	tagNone tag = iota
	tagBoldOpen
	tagBoldClose
	tagItalicOpen
	tagItalicClose
	tagBreak
)

var inlineTags = []struct {
	literal string
	kind    tag
}{
	{"<b>", tagBoldOpen},
	{"</b>", tagBoldClose},
	{"<i>", tagItalicOpen},
	{"</i>", tagItalicClose},
	{"<br/>", tagBreak},
	{"<br />", tagBreak},
	{"<br>", tagBreak},
}

// HardBreaks turns newlines into <br/> so they survive wrapping.
func HardBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br/>")
}

// parseMarkup splits s into styled runs. Only <b>, <i> and <br/> are
// interpreted; any other tag is kept as literal text.
func parseMarkup(s string) []run {
	var (
		runs   []run
		buf    strings.Builder
		bold   int
		italic int
	)
	flush := func() {
		if buf.Len() > 0 {
			runs = append(runs, run{text: buf.String(), bold: bold > 0, italic: italic > 0})
			buf.Reset()
		}
	}

	for i := 0; i < len(s); {
		if s[i] == '<' {
			if kind, n := matchTag(s[i:]); kind != tagNone {
				flush()
				switch kind {
				case tagBoldOpen:
					bold++
				case tagBoldClose:
					bold = max(bold-1, 0)
				case tagItalicOpen:
					italic++
				case tagItalicClose:
					italic = max(italic-1, 0)
				case tagBreak:
					runs = append(runs, run{brk: true})
				}
				i += n
				continue
			}
		}
		buf.WriteByte(s[i])
		i++
	}
	flush()
	return runs
}

func matchTag(s string) (tag, int) {
	for _, t := range inlineTags {
		if len(s) >= len(t.literal) && strings.EqualFold(s[:len(t.literal)], t.literal) {
			return t.kind, len(t.literal)
		}
	}
	return tagNone, 0
}

// piece is part of a word in one inline style.
type piece struct {
	text   string
	bold   bool
	italic bool
}

// item is either a word (one or more pieces) or a hard break.
type item struct {
	pieces []piece
	brk    bool
}

// splitWords collapses whitespace and groups runs into words. A word can
// change style midway, as in "<b>Pre</b>view".
func splitWords(runs []run) []item {
	var (
		items  []item
		word   []piece
		buf    strings.Builder
		bold   bool
		italic bool
	)
	flushPiece := func() {
		if buf.Len() > 0 {
			word = append(word, piece{text: buf.String(), bold: bold, italic: italic})
			buf.Reset()
		}
	}
	flushWord := func() {
		flushPiece()
		if len(word) > 0 {
			items = append(items, item{pieces: word})
			word = nil
		}
	}

	for _, r := range runs {
		if r.brk {
			flushWord()
			items = append(items, item{brk: true})
			continue
		}
		if r.bold != bold || r.italic != italic {
			flushPiece()
			bold, italic = r.bold, r.italic
		}
		for _, ch := range r.text {
			if unicode.IsSpace(ch) {
				flushWord()
				continue
			}
			buf.WriteRune(ch)
		}
	}
	flushWord()
	return items
}

// PlainText strips the interpreted inline tags, turning breaks into newlines.
func PlainText(s string) string {
	var b strings.Builder
	for _, r := range parseMarkup(s) {
		if r.brk {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(r.text)
	}
	return b.String()
}
