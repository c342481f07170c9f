package model

// TemplateDescriptor is the parsed .scaffold.toml. It is loaded once per run and
// never mutated afterwards.
type TemplateDescriptor struct {
	// Name is the template display name.
	Name string
	// Author is the template author, for display.
	Author string
	// Version is the template version, for display.
	Version string
	// Exclude holds glob patterns, relative to the template root, of entries
	// that are never generated.
	Exclude []string
	// Notes is a template rendered and shown after generation.
	Notes string
	// Parameters are the declared parameters in declaration order, which is
	// also the prompt order.
	Parameters []ParameterSpec
}

// Parameter returns the parameter declared under key.
func (d *TemplateDescriptor) Parameter(key string) (ParameterSpec, bool) {
	for _, p := range d.Parameters {
		if p.Key() == key {
			return p, true
		}
	}
	return nil, false
}

// Title returns a human readable template title.
func (d *TemplateDescriptor) Title() string {
	title := d.Name
	if title == "" {
		title = "template"
	}
	if d.Version != "" {
		title += " v" + d.Version
	}
	if d.Author != "" {
		title += " by " + d.Author
	}
	return title
}
