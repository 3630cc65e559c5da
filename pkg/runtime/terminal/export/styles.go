package export

import (
	"fmt"
	"strings"
)

type Style string

const (
	StylePlain     Style = "plain"
	StyleSimple    Style = "simple"
	StyleGrid      Style = "grid"
	StyleFancyGrid Style = "fancy_grid"
	StyleGithub    Style = "github"
	StylePipe      Style = "pipe"
	StyleOrgtbl    Style = "orgtbl"
	StyleRST       Style = "rst"
	StyleMediawiki Style = "mediawiki"
	StyleHTML      Style = "html"
	StyleLatex     Style = "latex"
)

var styles = []Style{
	StylePlain, StyleSimple, StyleGrid, StyleFancyGrid, StyleGithub, StylePipe,
	StyleOrgtbl, StyleRST, StyleMediawiki, StyleHTML, StyleLatex,
}

// Styles lists every supported table style
func Styles() []Style {
	return append([]Style(nil), styles...)
}

func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for _, s := range styles {
		names = append(names, string(s))
	}
	return names
}

func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range styles {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown table format %q (supported: %s)", name, strings.Join(StyleNames(), ", "))
}

// rule is a horizontal line: left + fill per column joined by sep + right.
type rule struct {
	left, fill, sep, right string

	// colon marks right alignment in the last fill character (pipe tables)
	colon bool
}

// lineFormat describes a text table. Nil rules are not drawn.
type lineFormat struct {
	top         *rule
	belowHeader *rule
	betweenRows *rule
	bottom      *rule
	rowLeft     string
	rowSep      string
	rowRight    string
	padding     int
}

var lineFormats = map[Style]lineFormat{
	StylePlain: {
		rowSep: "  ",
	},
	StyleSimple: {
		belowHeader: &rule{fill: "-", sep: "  "},
		rowSep:      "  ",
	},
	StyleGrid: {
		top:         &rule{left: "+", fill: "-", sep: "+", right: "+"},
		belowHeader: &rule{left: "+", fill: "=", sep: "+", right: "+"},
		betweenRows: &rule{left: "+", fill: "-", sep: "+", right: "+"},
		bottom:      &rule{left: "+", fill: "-", sep: "+", right: "+"},
		rowLeft:     "|",
		rowSep:      "|",
		rowRight:    "|",
		padding:     1,
	},
	StyleFancyGrid: {
		top:         &rule{left: "╒", fill: "═", sep: "╤", right: "╕"},
		belowHeader: &rule{left: "╞", fill: "═", sep: "╪", right: "╡"},
		betweenRows: &rule{left: "├", fill: "─", sep: "┼", right: "┤"},
		bottom:      &rule{left: "╘", fill: "═", sep: "╧", right: "╛"},
		rowLeft:     "│",
		rowSep:      "│",
		rowRight:    "│",
		padding:     1,
	},
	StyleGithub: {
		belowHeader: &rule{left: "|", fill: "-", sep: "|", right: "|"},
		rowLeft:     "|",
		rowSep:      "|",
		rowRight:    "|",
		padding:     1,
	},
	StylePipe: {
		belowHeader: &rule{left: "|", fill: "-", sep: "|", right: "|", colon: true},
		rowLeft:     "|",
		rowSep:      "|",
		rowRight:    "|",
		padding:     1,
	},
	StyleOrgtbl: {
		belowHeader: &rule{left: "|", fill: "-", sep: "+", right: "|"},
		rowLeft:     "|",
		rowSep:      "|",
		rowRight:    "|",
		padding:     1,
	},
	StyleRST: {
		top:         &rule{fill: "=", sep: "  "},
		belowHeader: &rule{fill: "=", sep: "  "},
		bottom:      &rule{fill: "=", sep: "  "},
		rowSep:      "  ",
	},
}

func (f lineFormat) drawRule(r *rule, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		n := w + 2*f.padding
		if r.colon {
			parts[i] = strings.Repeat(r.fill, n-1) + ":"
			continue
		}
		parts[i] = strings.Repeat(r.fill, n)
	}
	return r.left + strings.Join(parts, r.sep) + r.right
}

func (f lineFormat) drawRow(cells []string) string {
	pad := strings.Repeat(" ", f.padding)
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = pad + c + pad
	}
	return f.rowLeft + strings.Join(parts, f.rowSep) + f.rowRight
}
