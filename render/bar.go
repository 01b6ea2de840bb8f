package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chromebar/bar"
)

// Section represents one segment of the bar's right-packed content
type Section struct {
	Label    string
	Value    string
	Priority int // Higher = survives truncation
}

// Styles groups the tcell styles used across bar presentations
type Styles struct {
	Bg        tcell.Style // Background fill for the bar row
	Title     tcell.Style
	Label     tcell.Style
	Value     tcell.Style
	Separator tcell.Style
	Rule      tcell.Style // Bottom rule under the full bar
	Minimal   tcell.Style // Condensed single-row presentation
}

// DefaultStyles returns sensible defaults on the terminal's palette
func DefaultStyles() Styles {
	bg := tcell.StyleDefault.Background(tcell.ColorDarkBlue)
	return Styles{
		Bg:        bg,
		Title:     bg.Foreground(tcell.ColorWhite).Bold(true),
		Label:     bg.Foreground(tcell.ColorSilver),
		Value:     bg.Foreground(tcell.ColorYellow),
		Separator: bg.Foreground(tcell.ColorGray),
		Rule:      tcell.StyleDefault.Foreground(tcell.ColorGray),
		Minimal:   tcell.StyleDefault.Foreground(tcell.ColorSilver).Dim(true),
	}
}

// BarView is the bar's terminal presentation. It implements bar.Applier:
// the controller's apply step stores the flags, Draw renders whichever of
// the three presentations (full, minimal, hidden) they select
type BarView struct {
	Title     string
	Sections  []Section
	Separator string
	Padding   int
	Styles    Styles

	flags bar.Flags
}

// NewBarView creates a bar view with default separator and styles
func NewBarView(title string) *BarView {
	return &BarView{
		Title:     title,
		Separator: " │ ",
		Padding:   1,
		Styles:    DefaultStyles(),
	}
}

// Apply stores the controller's visibility flags
func (v *BarView) Apply(f bar.Flags) {
	v.flags = f
}

// Flags returns the last applied visibility flags
func (v *BarView) Flags() bar.Flags {
	return v.flags
}

// Height returns the number of screen rows the bar currently occupies:
// 2 full (content + rule), 1 minimal, 0 hidden
func (v *BarView) Height() int {
	switch {
	case v.flags.Hidden:
		return 0
	case v.flags.Minimal:
		return 1
	default:
		return 2
	}
}

// Draw renders the bar onto rows [0, Height) of the screen
func (v *BarView) Draw(screen tcell.Screen, width int) {
	switch {
	case v.flags.Hidden:
		return
	case v.flags.Minimal:
		v.drawMinimal(screen, width)
	default:
		v.drawFull(screen, width)
	}
}

func (v *BarView) drawMinimal(screen tcell.Screen, width int) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, 0, ' ', nil, v.Styles.Minimal)
	}
	drawText(screen, v.Padding, 0, v.Styles.Minimal, truncate(v.Title, width-2*v.Padding))
}

func (v *BarView) drawFull(screen tcell.Screen, width int) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, 0, ' ', nil, v.Styles.Bg)
		screen.SetContent(x, 1, '─', nil, v.Styles.Rule)
	}

	title := truncate(v.Title, width-2*v.Padding)
	drawText(screen, v.Padding, 0, v.Styles.Title, title)

	// Right-pack the sections into whatever the title leaves over
	avail := width - 2*v.Padding - runeLen(title) - 2
	if avail <= 0 {
		return
	}
	sections := fitSections(v.Sections, runeLen(v.Separator), avail)

	x := width - v.Padding - sectionsWidth(sections, runeLen(v.Separator))
	for i, sec := range sections {
		drawText(screen, x, 0, v.Styles.Label, sec.Label)
		x += runeLen(sec.Label)
		drawText(screen, x, 0, v.Styles.Value, sec.Value)
		x += runeLen(sec.Value)
		if i < len(sections)-1 {
			drawText(screen, x, 0, v.Styles.Separator, v.Separator)
			x += runeLen(v.Separator)
		}
	}
}

// fitSections drops the lowest-priority sections until the remainder fits.
// Relative order of survivors is preserved
func fitSections(sections []Section, sepLen, avail int) []Section {
	kept := append([]Section(nil), sections...)
	for len(kept) > 0 && sectionsWidth(kept, sepLen) > avail {
		lowest := 0
		for i, sec := range kept {
			if sec.Priority < kept[lowest].Priority {
				lowest = i
			}
		}
		kept = append(kept[:lowest], kept[lowest+1:]...)
	}
	return kept
}

func sectionsWidth(sections []Section, sepLen int) int {
	w := 0
	for i, sec := range sections {
		w += runeLen(sec.Label) + runeLen(sec.Value)
		if i < len(sections)-1 {
			w += sepLen
		}
	}
	return w
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
