package ui

import "strings"

// Theme is the palette, glyphs and frame used by every CLI renderer.
type Theme struct {
	Title, Muted, Accent, Faint   string
	Success, Error, Warning, Item string
	Check, Cross, Bang            string
	SectionGlyph, ItemGlyph       string
	CornerTL, CornerTR            string
	CornerBL, CornerBR            string
	H, V                          string
	// NoColor turns Paint into a no-op whatever the color mode.
	NoColor bool
}

var current = themes["classic"]

var themes = map[string]Theme{
	"classic": {
		Title: sgr("1"), Muted: sgr("90"), Accent: sgr("34"), Faint: sgr("2"),
		Success: sgr("32"), Error: sgr("31"), Warning: sgr("33"), Item: sgr("33"),
		Check: "✔", Cross: "✖", Bang: "!",
		SectionGlyph: "■", ItemGlyph: "•",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
	},
	"neon": {
		Title: sgr("1", "95"), Muted: sgr("90"), Accent: sgr("96"), Faint: sgr("2", "35"),
		Success: sgr("92"), Error: sgr("91"), Warning: sgr("93"), Item: sgr("95"),
		Check: "✔", Cross: "✖", Bang: "⚡",
		SectionGlyph: "◆", ItemGlyph: "◦",
		CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
		H: "─", V: "│",
	},
	"mono": {
		Check: "ok", Cross: "error:", Bang: "warning:",
		SectionGlyph: "#", ItemGlyph: "-",
		CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
		H: "-", V: "|",
		NoColor: true,
	},
}

// SetTheme selects classic, neon or mono; unknown names fall back to classic.
func SetTheme(name string) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		t = themes["classic"]
	}
	current = t
}

func Current() Theme { return current }
