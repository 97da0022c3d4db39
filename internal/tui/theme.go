package tui

import (
	"os"
	"strconv"
	"strings"

	"todo-cli/internal/imui"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

// Color pairs are lipgloss.AdaptiveColor values resolved per backend.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// PairColors is one color pair definition. Empty colors mean "terminal default".
type PairColors struct {
	Fg lipgloss.AdaptiveColor
	Bg lipgloss.AdaptiveColor
}

var (
	defaultColorSurfaceFg = ac("235", "252")
	defaultColorAccent    = ac("28", "35") // green
	defaultColorAccentFg  = ac("255", "235")
)

// Theme maps engine color pairs to terminal styles.
type Theme struct {
	pairs map[imui.ColorPair]PairColors
}

func DefaultTheme() Theme {
	t := Theme{pairs: map[imui.ColorPair]PairColors{}}
	t.DefinePair(imui.RegularPair, PairColors{Fg: defaultColorSurfaceFg})
	t.DefinePair(imui.HighlightPair, PairColors{Fg: defaultColorAccentFg, Bg: defaultColorAccent})
	return t
}

func (t *Theme) DefinePair(p imui.ColorPair, c PairColors) {
	if t.pairs == nil {
		t.pairs = map[imui.ColorPair]PairColors{}
	}
	t.pairs[p] = c
}

// Style returns the lipgloss style for a pair; unknown pairs render unstyled.
func (t Theme) Style(p imui.ColorPair) lipgloss.Style {
	st := lipgloss.NewStyle()
	c, ok := t.pairs[p]
	if !ok {
		return st
	}
	if c.Fg != (lipgloss.AdaptiveColor{}) {
		st = st.Foreground(c.Fg)
	}
	if c.Bg != (lipgloss.AdaptiveColor{}) {
		st = st.Background(c.Bg)
	}
	// Without colors the highlight pair still has to be visible.
	if p == imui.HighlightPair && lipgloss.ColorProfile() == termenv.Ascii {
		st = st.Reverse(true)
	}
	return st
}

// TcellStyle resolves a pair for the tcell backend.
func (t Theme) TcellStyle(p imui.ColorPair) tcell.Style {
	st := tcell.StyleDefault
	c, ok := t.pairs[p]
	if !ok {
		return st
	}
	if lipgloss.ColorProfile() == termenv.Ascii {
		if p == imui.HighlightPair {
			return st.Reverse(true)
		}
		return st
	}
	if v := adaptive(c.Fg); v != "" {
		st = st.Foreground(tcellColor(v))
	}
	if v := adaptive(c.Bg); v != "" {
		st = st.Background(tcellColor(v))
	}
	return st
}

func adaptive(c lipgloss.AdaptiveColor) string {
	if lipgloss.HasDarkBackground() {
		return c.Dark
	}
	return c.Light
}

// tcellColor accepts the same spellings as lipgloss.Color: an ANSI palette
// index ("62") or a hex/named color ("#e9e9e9", "green").
func tcellColor(v string) tcell.Color {
	if n, err := strconv.Atoi(v); err == nil {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(v)
}

// applyColorProfilePreference picks the lipgloss color profile. Only NO_COLOR
// (or noColor) turns colors off; CLICOLOR is ignored because
// termenv.EnvColorProfile would honor it and blank the screen.
func applyColorProfilePreference(noColor bool) {
	if noColor || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Detection under tmux/screen often under-reports; TERM/COLORTERM can upgrade it.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference pins lipgloss's light/dark guess: an explicit theme
// wins, then the COLORFGBG "fg;bg" hint. Otherwise lipgloss queries the
// terminal as usual.
func applyThemePreference(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if dark, ok := colorFGBGDark(); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}

// colorFGBGDark reads the COLORFGBG "fg;bg" hint. Palette entries 0-6 are dark
// backgrounds.
func colorFGBGDark() (dark, ok bool) {
	v := strings.TrimSpace(os.Getenv("COLORFGBG"))
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return false, false
	}
	return bg < 7, true
}
