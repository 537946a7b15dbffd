// Package codec decodes settings and configuration documents by file
// extension and encodes merged results for output.
//
// Supported formats are YAML (gopkg.in/yaml.v3), JSON (encoding/json) and
// TOML (github.com/BurntSushi/toml). Every document must have a mapping at
// its top level.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

// Extensions lists the file extensions probed by [Locate], in order.
var Extensions = []string{".yaml", ".yml", ".json", ".toml"}

var (
	// ErrUnsupportedFormat is returned for an unknown extension or format.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrDecode wraps every parse failure.
	ErrDecode = errors.New("decode error")
)

// FormatOf maps a file path to its [Format] by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case YAML, JSON, TOML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Locate returns the first existing file named stem plus one of
// [Extensions] inside dir. found is false when none exists; err is only set
// for failures other than absence.
func Locate(dir, stem string) (path string, found bool, err error) {
	for _, ext := range Extensions {
		candidate := filepath.Join(dir, stem+ext)

		info, statErr := os.Stat(candidate)
		switch {
		case statErr == nil && !info.IsDir():
			return candidate, true, nil
		case statErr == nil, errors.Is(statErr, os.ErrNotExist):
			continue
		default:
			return "", false, statErr
		}
	}

	return "", false, nil
}

// DecodeFile reads path and decodes it according to its extension.
func DecodeFile(path string) (map[string]any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Decode(format, data)
}

// Decode parses data as a mapping. An empty document decodes to an empty,
// non-nil map.
func Decode(format Format, data []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}

	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &out)
	case JSON:
		err = json.Unmarshal(data, &out)
	case TOML:
		_, err = toml.Decode(string(data), &out)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}

	if out == nil {
		out = map[string]any{}
	}

	return out, nil
}

// Encode writes v to w in the given format. JSON output is indented.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
