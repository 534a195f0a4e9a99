package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the plangen banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"        _                              ", "#818cf8"},
		{"  _ __ | | __ _ _ __   __ _  ___ _ __  ", "#a78bfa"},
		{" | '_ \\| |/ _` | '_ \\ / _` |/ _ \\ '_ \\ ", "#c084fc"},
		{" | |_) | | (_| | | | | (_| |  __/ | | |", "#e879f9"},
		{" | .__/|_|\\__,_|_| |_|\\__, |\\___|_| |_|", "#f472b6"},
		{" |_|                  |___/            ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String(" v"+version).Faint())
	fmt.Fprintln(w)
}
