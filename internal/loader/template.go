package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/get-webpack-config/internal/codec"
	"github.com/MKhiriev/get-webpack-config/models"
)

// templateData is the dot value a config template is executed with.
type templateData struct {
	Name     string
	Mode     models.Mode
	Legacy   bool
	Modern   bool
	Settings models.Settings
}

// templateFactory returns a ConfigFunc backed by the template at path.
// The file is read on every invocation.
//
// Templates run with missingkey=error: reading an absent settings key
// through .Settings.key fails the load. Use get, hasKey or default for
// optional settings.
func templateFactory(name, path string) models.ConfigFunc {
	return func(mode models.Mode, s models.Settings) (models.Configuration, error) {
		format, err := codec.FormatOf(path)
		if err != nil {
			return nil, err
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config template: %w", err)
		}

		tmpl, err := template.New(filepath.Base(path)).
			Option("missingkey=error").
			Funcs(templateFuncs()).
			Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
		}

		if s == nil {
			s = models.Settings{}
		}

		var buf bytes.Buffer
		err = tmpl.Execute(&buf, templateData{
			Name:     name,
			Mode:     mode,
			Legacy:   mode == models.Legacy,
			Modern:   mode == models.Modern,
			Settings: s,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
		}

		decoded, err := codec.Decode(format, buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("error decoding rendered %s: %w", filepath.Base(path), err)
		}

		return models.Configuration(decoded), nil
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"toJSON":  toJSON,
		"toYAML":  toYAML,
		"default": defaultValue,
		"hasKey":  hasKey,
		"get":     get,
		"indent":  indent,
	}
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func toYAML(v any) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(b), "\n"), nil
}

// defaultValue returns v unless it is nil or a zero value, in which case
// def is returned. Argument order allows {{ .x | default "y" }}.
func defaultValue(def, v any) any {
	if v == nil {
		return def
	}

	rv := reflect.ValueOf(v)
	if rv.IsZero() {
		return def
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		if rv.Len() == 0 {
			return def
		}
	}

	return v
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

// get walks a dotted path through nested mappings and returns nil when any
// segment is missing.
func get(m map[string]any, path string) any {
	var cur any = m
	for _, part := range strings.Split(path, ".") {
		next, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		if cur, ok = next[part]; !ok {
			return nil
		}
	}

	return cur
}

func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
