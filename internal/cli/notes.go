package cli

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/tacogips/scaffold/internal/app"
	"github.com/tacogips/scaffold/internal/debug"
)

const notesWidth = 80

// printNotes shows the rendered template notes between separators. Notes are
// formatted as markdown when writing to a colour terminal.
func printNotes(p *printer, result *app.GenerateResult) {
	if result.NotesErr != nil {
		p.warning("Failed to render template notes: %v", result.NotesErr)
		return
	}
	notes := strings.TrimSpace(result.Notes)
	if notes == "" {
		return
	}

	p.separator()
	p.info("%s", formatNotes(notes, !p.noColor && isTerminalWriter(p.out)))
	p.separator()
}

func formatNotes(notes string, styled bool) string {
	if !styled {
		return notes
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(notesWidth),
	)
	if err != nil {
		debug.Debug("[cli] Markdown renderer unavailable: %v", err)
		return notes
	}
	out, err := r.Render(notes)
	if err != nil {
		debug.Debug("[cli] Failed to render notes as markdown: %v", err)
		return notes
	}
	return strings.Trim(out, "\n")
}
