package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/wippyai/coffview/coff"
)

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	index  lipgloss.Style
	name   lipgloss.Style
	offset lipgloss.Style
	help   lipgloss.Style
	err    lipgloss.Style
}

// newStyles builds the output styles for f. Color mode "auto" enables color
// only when f is a terminal.
func newStyles(f *os.File, color string) (*styles, error) {
	r := lipgloss.NewRenderer(f)
	switch color {
	case "always":
		r.SetColorProfile(termenv.TrueColor)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	case "auto", "":
		if !term.IsTerminal(int(f.Fd())) {
			r.SetColorProfile(termenv.Ascii)
		}
	default:
		return nil, fmt.Errorf("invalid -color %q: want auto, always or never", color)
	}
	return stylesFor(r), nil
}

func stylesFor(r *lipgloss.Renderer) *styles {
	return &styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		label:  r.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		value:  r.NewStyle().Bold(true),
		index:  r.NewStyle().Foreground(lipgloss.Color("#666666")),
		name:   r.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		offset: r.NewStyle().Foreground(lipgloss.Color("#666666")),
		help:   r.NewStyle().Foreground(lipgloss.Color("#666666")),
		err:    r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}
}

func renderDetails(st *styles, filename string, d *coff.Details) string {
	var b strings.Builder

	b.WriteString(st.title.Render("COFF"))
	b.WriteString(" ")
	b.WriteString(filename)
	b.WriteString("\n\n")

	field := func(label string, v any) {
		b.WriteString(st.label.Render(fmt.Sprintf("%-22s", label)))
		b.WriteString(st.value.Render(fmt.Sprint(v)))
		b.WriteByte('\n')
	}
	field("Symbol table offset:", d.SymbolTableOffset())
	field("Symbol table entries:", d.NumberOfSymbols())
	field("String table offset:", d.StringTableOffset())
	field("String table size:", d.StringTableSize())

	b.WriteString("\n")
	for i := 0; i < d.Len(); i++ {
		b.WriteString(renderRow(st, d, i, len(fmt.Sprint(d.Len()))))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderRow(st *styles, d *coff.Details, i, width int) string {
	return st.index.Render(fmt.Sprintf("[%*d]", width, i)) + " " +
		st.offset.Render(fmt.Sprintf("%#08x", d.EntryOffset(i))) + " " +
		st.name.Render(d.SymbolName(i))
}
