// Package display renders jtools terminal output: the run banner, one styled
// line per batch item and the end-of-run summary.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF5F87")
	warningColor = lipgloss.Color("#FFB86C")
	dimTextColor = lipgloss.Color("#767676")

	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	skipStyle    = lipgloss.NewStyle().Foreground(warningColor)
	dimStyle     = lipgloss.NewStyle().Foreground(dimTextColor)
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// Printer writes styled lines to an output.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer on w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner prints a heading line.
func (p *Printer) Banner(title string) {
	fmt.Fprintln(p.w, bannerStyle.Render(" ◆ "+title+" "))
}

// Success prints a completed item.
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintln(p.w, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Failure prints a failed item.
func (p *Printer) Failure(format string, args ...interface{}) {
	fmt.Fprintln(p.w, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Skip prints an item that was left alone.
func (p *Printer) Skip(format string, args ...interface{}) {
	fmt.Fprintln(p.w, skipStyle.Render("- "+fmt.Sprintf(format, args...)))
}

// Info prints a plain, dimmed line.
func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintln(p.w, dimStyle.Render(fmt.Sprintf(format, args...)))
}

// Field prints "label: value".
func (p *Printer) Field(label, value string) {
	fmt.Fprintln(p.w, labelStyle.Render(label+":")+" "+value)
}

// Tally counts batch item outcomes.
type Tally struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
}

// Summary prints the end-of-run counts.
func (p *Printer) Summary(mode string, t Tally) {
	parts := []string{
		successStyle.Render(fmt.Sprintf("%d succeeded", t.Succeeded)),
		errorStyle.Render(fmt.Sprintf("%d failed", t.Failed)),
		skipStyle.Render(fmt.Sprintf("%d skipped", t.Skipped)),
	}
	fmt.Fprintf(p.w, "%s %s (%d items)\n",
		labelStyle.Render(mode+" finished:"),
		strings.Join(parts, dimStyle.Render(" • ")),
		t.Total)
}

// FormatBytes renders a byte count with a binary unit, e.g. "1.50 GiB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 5; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
