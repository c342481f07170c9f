package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printer writes user-facing messages. Errors always go to err; everything
// else is dropped in quiet mode.
type printer struct {
	out     io.Writer
	err     io.Writer
	quiet   bool
	noColor bool
}

func (p *printer) paint(style lipgloss.Style, s string) string {
	if p.noColor {
		return s
	}
	return style.Render(s)
}

// info prints an informational message
func (p *printer) info(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// success prints a success message
func (p *printer) success(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.paint(successStyle, "✓"), fmt.Sprintf(format, args...))
}

// warning prints a warning message
func (p *printer) warning(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.paint(warningStyle, "⚠"), fmt.Sprintf(format, args...))
}

// errorMsg prints an error message, even in quiet mode
func (p *printer) errorMsg(format string, args ...any) {
	fmt.Fprintf(p.err, "%s %s\n", p.paint(errorStyle, "✗"), fmt.Sprintf(format, args...))
}

// header prints a section header
func (p *printer) header(title string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", p.paint(headerStyle, "=== "+title+" ==="))
}

// separator prints a separator line
func (p *printer) separator() {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.paint(mutedStyle, strings.Repeat("─", 40)))
}

// muted prints a dimmed line
func (p *printer) muted(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.paint(mutedStyle, fmt.Sprintf(format, args...)))
}
