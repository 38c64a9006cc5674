// Package template is a string-substitution renderer: {{ name }} fills
// from a context map and {% for x in xs %}...{% endfor %} repeats a
// block per element. There is no expression grammar beyond that.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
)

var (
	varPattern  = regexp.MustCompile(`\{\{\s*([^}]+?)\s*\}\}`)
	loopPattern = regexp.MustCompile(`(?s)\{%\s*for\s+(\w+)\s+in\s+(\w+)\s*%\}(.*?)\{%\s*endfor\s*%\}`)
)

type Engine struct {
	dir string
}

// NewEngine renders templates from files below dir.
func NewEngine(dir string) *Engine {
	return &Engine{dir: dir}
}

// Render loads the named template file and renders it with ctx. A
// missing template yields a visible error page instead of failing the
// request.
func (e *Engine) Render(name string, ctx map[string]any) string {
	raw, err := os.ReadFile(filepath.Join(e.dir, name))
	if err != nil {
		return fmt.Sprintf("<h1>Template Error</h1><p>Template '%s' not found</p>", name)
	}
	return e.RenderString(string(raw), ctx)
}

// RenderString renders template text with ctx. Variables are filled
// first: a key missing from ctx stays in the output as a normalized
// {{ name }} placeholder, which lets a following loop pass fill it per
// element. Loops over a list absent from ctx render an HTML comment
// marker rather than erroring.
func (e *Engine) RenderString(text string, ctx map[string]any) string {
	rendered := varPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.TrimSpace(varPattern.FindStringSubmatch(match)[1])
		if value, ok := ctx[name]; ok {
			return fmt.Sprint(value)
		}
		return "{{ " + name + " }}"
	})

	rendered = loopPattern.ReplaceAllStringFunc(rendered, func(match string) string {
		parts := loopPattern.FindStringSubmatch(match)
		loopVar, listVar, body := strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), parts[3]

		list, ok := ctx[listVar]
		if !ok {
			return fmt.Sprintf("<!-- List '%s' not found in context -->", listVar)
		}

		var out strings.Builder
		placeholder := "{{ " + loopVar + " }}"
		for _, item := range elements(list) {
			out.WriteString(strings.ReplaceAll(body, placeholder, fmt.Sprint(item)))
		}
		return out.String()
	})

	return rendered
}

// elements flattens any slice or array value into []any; a non-sequence
// value iterates once as itself.
func elements(list any) []any {
	v := reflect.ValueOf(list)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return []any{list}
	}
	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.Index(i).Interface()
	}
	return out
}
