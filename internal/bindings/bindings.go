// Package bindings builds variable bindings from command-line pairs and
// from YAML or TOML files.
package bindings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidName is returned for binding names that are not a single ASCII letter.
var ErrInvalidName = errors.New("binding name must be a single letter")

// Format is the encoding of a bindings file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format from the file extension, defaulting to TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads a bindings file. The file is a flat table of name = integer.
func Load(path string) (map[rune]int, error) {
	slog.Debug("Load: start", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("Load: end (error)", "path", path, "error", err)
		return nil, fmt.Errorf("reading bindings file %s: %w", path, err)
	}
	vars, err := LoadFromBytes(data, DetectFormat(path))
	if err != nil {
		slog.Debug("Load: end (error)", "path", path, "error", err)
		return nil, fmt.Errorf("loading bindings file %s: %w", path, err)
	}
	slog.Debug("Load: end", "path", path, "count", len(vars))
	return vars, nil
}

// LoadFromBytes decodes bindings encoded in format.
func LoadFromBytes(data []byte, format Format) (map[rune]int, error) {
	var raw map[string]int
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	vars := make(map[rune]int, len(raw))
	for name, value := range raw {
		r, err := ParseName(name)
		if err != nil {
			return nil, err
		}
		vars[r] = value
	}
	return vars, nil
}

// ParseName validates a binding name and returns it as a rune.
func ParseName(name string) (rune, error) {
	if len(name) != 1 {
		return 0, fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	ch := name[0]
	if !('a' <= ch && ch <= 'z') && !('A' <= ch && ch <= 'Z') {
		return 0, fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return rune(ch), nil
}

// ParsePair parses "x=3".
func ParsePair(s string) (rune, int, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("invalid binding %q: expected name=value", s)
	}
	r, err := ParseName(strings.TrimSpace(name))
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value for %q: %w", name, err)
	}
	return r, n, nil
}

// Merge copies src into dst, overwriting existing names. dst is allocated if nil.
func Merge(dst, src map[rune]int) map[rune]int {
	if dst == nil {
		dst = make(map[rune]int, len(src))
	}
	for name, value := range src {
		dst[name] = value
	}
	return dst
}

// Vars collects repeated -var name=value flags. It implements flag.Value.
type Vars map[rune]int

func (v *Vars) String() string {
	if v == nil || *v == nil {
		return ""
	}
	pairs := make([]string, 0, len(*v))
	for name, value := range *v {
		pairs = append(pairs, fmt.Sprintf("%c=%d", name, value))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (v *Vars) Set(s string) error {
	name, value, err := ParsePair(s)
	if err != nil {
		return err
	}
	if *v == nil {
		*v = make(Vars)
	}
	(*v)[name] = value
	return nil
}
