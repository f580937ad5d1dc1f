package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseError reports a settings file that could not be decoded or failed
// validation.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads settings from path. The format follows the extension: .toml,
// .yaml or .yml. A missing file yields Default.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data in the format implied by name's extension. Fields absent
// from data keep their Default values.
func Parse(name string, data []byte) (Settings, error) {
	s := Default()

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			perr := &ParseError{Path: name, Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return Settings{}, perr
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, &ParseError{Path: name, Err: err}
		}
	default:
		return Settings{}, fmt.Errorf("config %s: unsupported format %q", name, ext)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, &ParseError{Path: name, Err: err}
	}
	return s, nil
}
