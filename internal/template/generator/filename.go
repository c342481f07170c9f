package generator

import (
	"fmt"
	"path"
	"strings"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/engine"
	"github.com/tacogips/scaffold/internal/template/model"
)

// RenderPath renders a slash-separated template path one component at a time,
// so directory and file names can embed context values. Returns a
// GeneratorPathRender error if:
// - a component fails to render
// - a rendered component is empty, "." or ".."
// - a rendered component contains a path separator
func RenderPath(e engine.Engine, rel string, ctx model.Context) (string, error) {
	components := strings.Split(rel, "/")
	rendered := make([]string, 0, len(components))

	for _, component := range components {
		if component == "" {
			continue
		}
		if !engine.HasActions(component) {
			rendered = append(rendered, component)
			continue
		}

		out, err := e.Render(rel, component, ctx)
		if err != nil {
			return "", newGeneratorError(GeneratorPathRender, "failed to render path", rel, err)
		}
		if err := validateComponent(out, component); err != nil {
			return "", newGeneratorError(GeneratorPathRender, "invalid rendered path", rel, err)
		}
		debug.Debug("[generator] Path component %q -> %q", component, out)
		rendered = append(rendered, out)
	}

	result := path.Join(rendered...)
	if result == "" || result == "." {
		return "", newGeneratorError(GeneratorPathRender, "path renders to nothing", rel, nil)
	}
	return result, nil
}

func validateComponent(rendered, original string) error {
	if strings.TrimSpace(rendered) == "" {
		return fmt.Errorf("component %q renders to an empty name", original)
	}
	if rendered == "." || rendered == ".." {
		return fmt.Errorf("component %q renders to %q", original, rendered)
	}
	if strings.ContainsAny(rendered, "/\\") {
		return fmt.Errorf("component %q renders to %q, which contains a path separator", original, rendered)
	}
	if strings.ContainsRune(rendered, 0) {
		return fmt.Errorf("component %q renders to a name containing a NUL byte", original)
	}
	return nil
}
