// Package descriptor loads and validates .scaffold.toml template descriptors.
package descriptor

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/model"
)

// rawDescriptor mirrors the TOML layout before validation.
type rawDescriptor struct {
	Template   *rawTemplate            `toml:"template"`
	Parameters map[string]rawParameter `toml:"parameters"`
}

type rawTemplate struct {
	Name    string   `toml:"name"`
	Author  string   `toml:"author"`
	Version string   `toml:"version"`
	Exclude []string `toml:"exclude"`
	Notes   string   `toml:"notes"`
}

type rawParameter struct {
	Type     string `toml:"type"`
	Message  string `toml:"message"`
	Required bool   `toml:"required"`
	Default  any    `toml:"default"`
	Values   any    `toml:"values"`
}

// parameterHeader matches [parameters.<key>] table headers, bare or quoted.
var parameterHeader = regexp.MustCompile(`(?m)^[ \t]*\[[ \t]*parameters[ \t]*\.[ \t]*(?:"([^"]*)"|'([^']*)'|([A-Za-z0-9_-]+))[ \t]*\]`)

// redefinedKey extracts the key from the decoder's duplicate key errors.
var redefinedKey = regexp.MustCompile(`Key '([^']+)' (?:has already been defined|was already created)`)

// Load reads and parses the descriptor at path.
func Load(path string) (*model.TemplateDescriptor, error) {
	debug.Debug("[descriptor] Loading %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		de := newMalformedError("failed to read descriptor", err)
		de.File = path
		return nil, de
	}

	d, err := Parse(data)
	if err != nil {
		var de *DescriptorError
		if errors.As(err, &de) {
			de.File = path
		}
		return nil, err
	}
	return d, nil
}

// LoadFS reads and parses the descriptor at the root of a template tree.
func LoadFS(root billy.Filesystem) (*model.TemplateDescriptor, error) {
	data, err := util.ReadFile(root, model.DescriptorFile)
	if err != nil {
		msg := "failed to read descriptor"
		if errors.Is(err, fs.ErrNotExist) {
			msg = "template has no " + model.DescriptorFile
		}
		de := newMalformedError(msg, err)
		de.File = model.DescriptorFile
		return nil, de
	}

	d, err := Parse(data)
	if err != nil {
		var de *DescriptorError
		if errors.As(err, &de) {
			de.File = model.DescriptorFile
		}
		return nil, err
	}
	return d, nil
}

// Parse parses descriptor text. Parameters keep their declaration order.
func Parse(data []byte) (*model.TemplateDescriptor, error) {
	if key, dup := duplicateParameter(string(data)); dup {
		return nil, newSchemaError("parameters."+key, "parameter declared more than once")
	}

	var raw rawDescriptor
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		var pe toml.ParseError
		if errors.As(err, &pe) {
			if key, dup := redefinedParameter(pe.Message); dup {
				return nil, newSchemaError("parameters."+key, "parameter declared more than once")
			}
			return nil, newMalformedError(pe.ErrorWithPosition(), nil)
		}
		return nil, newMalformedError("failed to decode descriptor", err)
	}

	for _, k := range md.Undecoded() {
		debug.Debug("[descriptor] Ignoring unknown key %s", k.String())
	}

	if raw.Template == nil {
		return nil, newSchemaError("template", "missing [template] table")
	}

	d := &model.TemplateDescriptor{
		Name:    raw.Template.Name,
		Author:  raw.Template.Author,
		Version: raw.Template.Version,
		Exclude: raw.Template.Exclude,
		Notes:   raw.Template.Notes,
	}

	if err := validateExclude(d.Exclude); err != nil {
		return nil, err
	}

	for _, key := range parameterOrder(md) {
		rp, ok := raw.Parameters[key]
		if !ok {
			continue
		}
		spec, err := buildParameter(key, rp, md)
		if err != nil {
			return nil, err
		}
		d.Parameters = append(d.Parameters, spec)
	}

	debug.Debug("[descriptor] Loaded %s with %d parameters", d.Title(), len(d.Parameters))
	return d, nil
}

// duplicateParameter scans table headers for a repeated [parameters.<key>].
// TOML decoding alone reports this as a syntax error.
func duplicateParameter(text string) (string, bool) {
	seen := make(map[string]bool)
	for _, m := range parameterHeader.FindAllStringSubmatch(text, -1) {
		key := m[1] + m[2] + m[3]
		if seen[key] {
			return key, true
		}
		seen[key] = true
	}
	return "", false
}

// redefinedParameter reports the parameter key behind a TOML "already defined"
// error, which covers inline tables and dotted keys declared twice.
func redefinedParameter(msg string) (string, bool) {
	m := redefinedKey.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	parts := strings.SplitN(m[1], ".", 3)
	if len(parts) < 2 || parts[0] != "parameters" {
		return "", false
	}
	return strings.Trim(parts[1], `"'`), true
}

// parameterOrder returns parameter keys in declaration order.
func parameterOrder(md toml.MetaData) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, k := range md.Keys() {
		if len(k) != 2 || k[0] != "parameters" || seen[k[1]] {
			continue
		}
		seen[k[1]] = true
		keys = append(keys, k[1])
	}
	return keys
}
