package status

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Level int

const (
	Success Level = iota
	Warning
	Error
	Info
)

var markers = map[Level]string{
	Success: "✅",
	Warning: "⚠️ ",
	Error:   "❌",
	Info:    "ℹ️ ",
}

var colors = map[Level]color.Attribute{
	Success: color.FgGreen,
	Warning: color.FgYellow,
	Error:   color.FgRed,
	Info:    color.FgCyan,
}

// Line returns msg prefixed with the marker of level
func Line(level Level, msg string) string {
	return markers[level] + " " + msg
}

// Printer writes human-readable status lines
type Printer struct {
	writer io.Writer
	color  bool
}

// NewPrinter creates a status printer; color adds ANSI colours to the lines
func NewPrinter(writer io.Writer, color bool) *Printer {
	if writer == nil {
		writer = os.Stdout
	}
	return &Printer{writer: writer, color: color}
}

func (p *Printer) Success(format string, args ...any) { p.print(Success, format, args...) }
func (p *Printer) Warn(format string, args ...any)    { p.print(Warning, format, args...) }
func (p *Printer) Error(format string, args ...any)   { p.print(Error, format, args...) }
func (p *Printer) Info(format string, args ...any)    { p.print(Info, format, args...) }

func (p *Printer) print(level Level, format string, args ...any) {
	line := Line(level, fmt.Sprintf(format, args...))
	if p.color {
		c := color.New(colors[level])
		c.EnableColor()
		line = c.Sprint(line)
	}
	fmt.Fprintln(p.writer, line)
}
