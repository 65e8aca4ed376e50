package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"tpsrank-core/candidate"
	"tpsrank-core/score"
)

// Options control the ASCII rendering of the per-candidate breakdown.
type Options struct {
	// Printed width of the sub-score bars. If <=0, use default (10).
	BarWidth int

	// Glyphs
	BarGlyph string // default "|"
	DotGlyph string // default "."

	// Draw proportional bars next to each sub-score.
	ShowBars bool
}

// DefaultOptions keeps the current look & feel.
var DefaultOptions = Options{
	BarWidth: 10,
	BarGlyph: "|",
	DotGlyph: ".",
	ShowBars: true,
}

const linePrefix = "# "

// helpers for default glyphs
func (o Options) BarGlyphOrDefault() string {
	if o.BarGlyph != "" {
		return o.BarGlyph
	}
	return DefaultOptions.BarGlyph
}
func (o Options) DotGlyphOrDefault() string {
	if o.DotGlyph != "" {
		return o.DotGlyph
	}
	return DefaultOptions.DotGlyph
}

// bar renders v in [0,1] as a fixed-width glyph bar.
func bar(v float64, width int, glyph, dot string) string {
	if width <= 0 {
		width = DefaultOptions.BarWidth
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	n := int(v*float64(width) + 0.5)
	return strings.Repeat(glyph, n) + strings.Repeat(dot, width-n)
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// RenderScoredWithOptions prints the sub-score block shown under each text row.
func RenderScoredWithOptions(s score.Scored, opt Options) string {
	width := opt.BarWidth
	if width <= 0 {
		width = DefaultOptions.BarWidth
	}
	glyph := opt.BarGlyphOrDefault()
	dot := opt.DotGlyphOrDefault()

	arch := candidate.ArchPlaceholder
	if s.HasArch {
		arch = s.Arch.String()
	}
	complete := "no M start"
	if s.StartsWithM {
		complete = "starts with M"
	}

	type row struct {
		label string
		value float64
		note  string
	}
	rows := []row{
		{"architecture", s.ArchScore, arch},
		{"type", s.TypeScore, string(s.Type)},
		{"distance", s.DistScore, fmt.Sprintf("raw %s, x2 in total", ftoa(s.Distance))},
		{"completeness", s.CompleteScore, complete},
		{"length", s.LengthScore, fmt.Sprintf("%d aa", s.Length)},
	}

	var b strings.Builder
	for _, r := range rows {
		if opt.ShowBars {
			fmt.Fprintf(&b, "%s%-13s %-7s %s  %s\n",
				linePrefix, r.label, ftoa(r.value), bar(r.value, width, glyph, dot), r.note)
		} else {
			fmt.Fprintf(&b, "%s%-13s %-7s %s\n", linePrefix, r.label, ftoa(r.value), r.note)
		}
	}
	fmt.Fprintf(&b, "%s%-13s %s\n", linePrefix, "total", ftoa(s.Total))
	b.WriteString("#\n")
	return b.String()
}

// RenderScored keeps the default look.
func RenderScored(s score.Scored) string {
	return RenderScoredWithOptions(s, DefaultOptions)
}
