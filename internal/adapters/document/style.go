package document

// Align is horizontal alignment inside a frame or cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Palette.
var (
	ColorTitle  = Color{0x8B, 0x5F, 0xBF}
	ColorText   = Color{0x4A, 0x2D, 0x5E}
	ColorAccent = Color{0xE6, 0xD9, 0xF2}
	ColorCard   = Color{0xF9, 0xF5, 0xFA}
	ColorGrey   = Color{0x80, 0x80, 0x80}
	ColorBlack  = Color{0, 0, 0}
)

// Style is a named paragraph style. Sizes and spacing are in points.
type Style struct {
	Name        string
	Size        float64
	Leading     float64
	Bold        bool
	Italic      bool
	Color       Color
	Align       Align
	SpaceBefore float64
	SpaceAfter  float64
}

// WithAlign returns a copy of s with a different alignment.
func (s Style) WithAlign(a Align) Style {
	s.Align = a
	return s
}

// Paragraph styles. These are values; callers receive copies.
var (
	Body = Style{
		Name:    "Body",
		Size:    10,
		Leading: 12,
		Color:   ColorText,
	}
	Title = Style{
		Name:       "Title",
		Size:       18,
		Leading:    22,
		Bold:       true,
		Color:      ColorTitle,
		Align:      AlignCenter,
		SpaceAfter: 6,
	}
	Heading = Style{
		Name:       "Heading",
		Size:       12,
		Leading:    14.4,
		Bold:       true,
		Color:      ColorText,
		SpaceAfter: 6,
	}
	Italic = Style{
		Name:       "Italic",
		Size:       10,
		Leading:    12,
		Italic:     true,
		Color:      ColorText,
		SpaceAfter: 3,
	}
)

// TableStyle controls cell padding (points), grid and backgrounds.
type TableStyle struct {
	PadLeft, PadRight, PadTop, PadBottom float64

	// Grid is the grid line width in points; zero draws no grid.
	Grid      float64
	GridColor Color

	// HeaderRows rows at the top receive HeaderBackground. With RepeatHeader
	// they are drawn again at the top of every continuation page.
	HeaderRows       int
	HeaderBackground *Color
	RepeatHeader     bool

	// Background fills body rows.
	Background *Color

	// ColAlign aligns fixed-size drawings inside their column.
	ColAlign []Align

	// MinRowHeight is in millimetres.
	MinRowHeight float64
}

// DefaultTableStyle mirrors the usual 6pt/3pt cell padding.
var DefaultTableStyle = TableStyle{PadLeft: 6, PadRight: 6, PadTop: 3, PadBottom: 3}
