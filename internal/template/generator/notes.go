package generator

import (
	"strings"

	"github.com/tacogips/scaffold/internal/template/engine"
	"github.com/tacogips/scaffold/internal/template/model"
)

// RenderNotes renders the descriptor notes with the final context. An empty
// notes template renders to "". Failures are GeneratorNotesRender errors and
// never affect already generated output.
func RenderNotes(e engine.Engine, d *model.TemplateDescriptor, ctx model.Context) (string, error) {
	if d == nil || strings.TrimSpace(d.Notes) == "" {
		return "", nil
	}
	out, err := e.Render("notes", d.Notes, ctx)
	if err != nil {
		return "", newGeneratorError(GeneratorNotesRender, "failed to render notes", "", err)
	}
	return out, nil
}
