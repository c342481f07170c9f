package engine

import (
	"fmt"
	"slices"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// DefaultFuncs returns the helpers every template can use.
func DefaultFuncs() template.FuncMap {
	return template.FuncMap{
		"snake":          strcase.ToSnake,
		"screamingSnake": strcase.ToScreamingSnake,
		"camel":          strcase.ToCamel,
		"lowerCamel":     strcase.ToLowerCamel,
		"kebab":          strcase.ToKebab,
		"screamingKebab": strcase.ToScreamingKebab,
		"upper":          strings.ToUpper,
		"lower":          strings.ToLower,
		"title":          title,
		"trim":           strings.TrimSpace,
		"replace":        replace,
		"join":           join,
		"has":            has,
		"forRange":       forRange,
	}
}

// forRange returns 0..n-1 so templates can repeat a block n times:
//
//	{{range $i := forRange 5}}X{{$i}}{{end}}
func forRange(n any) ([]int, error) {
	var count int
	switch v := n.(type) {
	case int:
		count = v
	case int64:
		count = int(v)
	case float64:
		if v != float64(int(v)) {
			return nil, fmt.Errorf("forRange: %v is not a whole number", v)
		}
		count = int(v)
	default:
		return nil, fmt.Errorf("forRange: expected a number, got %T", n)
	}
	if count < 0 {
		return nil, fmt.Errorf("forRange: negative count %d", count)
	}

	out := make([]int, count)
	for i := range out {
		out[i] = i
	}
	return out, nil
}

func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// replace takes the input last so it works at the end of a pipeline.
func replace(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}

func join(sep string, items []string) string {
	return strings.Join(items, sep)
}

// has reports whether a multiselect value contains item.
func has(items []string, item string) bool {
	return slices.Contains(items, item)
}
