// Package view renders snapshots into final terminal strings. Every
// cell it emits has already been through the price and time formatting
// layers; nothing downstream interprets data again.
package view

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Renderer holds per-invocation rendering state. It is created once
// per run and passed explicitly; there is no process-wide console.
type Renderer struct {
	Source   string // footer label, usually the API host
	colorize bool
}

// NewRenderer enables color only for interactive terminals, honoring
// NO_COLOR.
func NewRenderer(out *os.File, source string) *Renderer {
	enabled := out != nil &&
		(isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()))
	if os.Getenv("NO_COLOR") != "" {
		enabled = false
	}
	return &Renderer{Source: source, colorize: enabled}
}

var palette = map[string]*color.Color{
	"cyan":    color.New(color.FgCyan),
	"yellow":  color.New(color.FgYellow),
	"blue":    color.New(color.FgBlue),
	"magenta": color.New(color.FgMagenta),
	"green":   color.New(color.FgGreen),
	"red":     color.New(color.FgRed),
	"white":   color.New(color.FgWhite),
}

// paint wraps s in the named color when color is enabled.
func (r *Renderer) paint(name, s string) string {
	if !r.colorize {
		return s
	}
	c, ok := palette[name]
	if !ok {
		return s
	}
	return c.Sprint(s)
}

// rule returns a horizontal divider of the given width.
func rule(width int) string {
	return strings.Repeat("─", width)
}

// titleCase turns a category key like "pre_ipo" into "Pre-Ipo".
func titleCase(name string) string {
	name = strings.ReplaceAll(name, "_", "-")
	parts := strings.Split(name, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, "-")
}
