package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iw2rmb/kanapad/buffer"
)

var errNoPath = errors.New("no file name")

type document struct {
	path string
	text string
}

func (d document) name() string {
	if d.path == "" {
		return "[untitled]"
	}
	return filepath.Base(d.path)
}

// dir is the directory listed by the ls command.
func (d document) dir() string {
	if d.path == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return "."
	}
	return filepath.Dir(d.path)
}

// openDocument reads path. A missing file opens as an empty document that is
// created on first save.
func openDocument(path string) (document, error) {
	if path == "" {
		return document{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return document{path: path}, nil
		}
		return document{}, fmt.Errorf("open %s: %w", path, err)
	}
	return document{path: path, text: string(data)}, nil
}

func saveDocument(path, text string) error {
	if path == "" {
		return errNoPath
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// textWithoutLine returns the content of s with line n left out.
func textWithoutLine(s *buffer.State, n int) string {
	lines := make([]string, 0, s.LineCount())
	for i, l := range s.Iterate() {
		if i == n {
			continue
		}
		lines = append(lines, l.Text())
	}
	return strings.Join(lines, "\n")
}

// listDir returns the entry names of dir, directories suffixed with '/'.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	return names, nil
}
