package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Style renders text in a color, or with plain-text decorations when color
// output is disabled.
type Style struct {
	color  *color.Color
	before string
	after  string
}

func newStyle(attr color.Attribute, before, after string) Style {
	return Style{color: color.New(attr), before: before, after: after}
}

func (s Style) render(text string) string {
	if Plain() {
		return s.before + text + s.after
	}
	return s.color.Sprint(text)
}

// Sprint renders its arguments with the style.
func (s Style) Sprint(a ...any) string {
	return s.render(fmt.Sprint(a...))
}

// Sprintf renders a formatted string with the style.
func (s Style) Sprintf(format string, a ...any) string {
	return s.render(fmt.Sprintf(format, a...))
}

// Plain reports whether output must not contain ANSI escapes, either because
// NO_COLOR is set or because fatih/color decided the terminal cannot show them.
func Plain() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}

var (
	// Command renders gcloud command lines. `backticks` without color.
	Command = newStyle(color.FgYellow, "`", "`")

	Path = newStyle(color.FgYellow, "", "")

	// Value renders projects, keyrings, keys and other user-supplied values.
	// 'quotes' without color.
	Value = newStyle(color.FgCyan, "'", "'")

	Success = newStyle(color.FgGreen, "", "")
	Error   = newStyle(color.FgRed, "", "")
	Warning = newStyle(color.FgYellow, "", "")
	Info    = newStyle(color.FgCyan, "", "")

	// Muted renders secondary remarks such as "dry-run". (parentheses)
	// without color.
	Muted = newStyle(color.FgHiBlack, "(", ")")
)

// CommandLine renders a gcloud command line as it is echoed before it runs.
func CommandLine(line string) string {
	return "$ " + Command.Sprint(line)
}

// Done prefixes msg with a success mark.
func Done(msg string) string {
	return Success.Sprint("✓") + " " + msg
}

// Failed prefixes msg with a failure mark.
func Failed(msg string) string {
	return Error.Sprint("✗") + " " + msg
}

// Caution prefixes msg with a warning mark.
func Caution(msg string) string {
	return Warning.Sprint("⚠") + " " + msg
}

// Note prefixes msg with an information mark.
func Note(msg string) string {
	return Info.Sprint("ℹ") + " " + msg
}

// Hint renders an arrow-prefixed follow-up line.
func Hint(msg string) string {
	return Info.Sprint("→") + " " + msg
}
