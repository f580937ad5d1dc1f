// Package config loads kanapad settings from TOML or YAML files.
package config

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/kanapad/ime"
)

// Settings is the user-editable configuration.
type Settings struct {
	// File is opened when the edit command gets no argument.
	File string `toml:"file" yaml:"file"`

	ShowLineNumbers bool `toml:"show_line_numbers" yaml:"show_line_numbers"`
	// FollowCursor disables manual wheel scrolling.
	FollowCursor bool `toml:"follow_cursor" yaml:"follow_cursor"`
	// HistoryLimit caps undo entries. Zero uses the built-in default and
	// -1 disables undo.
	HistoryLimit int `toml:"history_limit" yaml:"history_limit"`

	// IME starts the editor in kana mode.
	IME bool `toml:"ime" yaml:"ime"`
	// Kana adds or overrides composition entries, romaji to text.
	Kana map[string]string `toml:"kana" yaml:"kana"`

	// Pills are the labels inserted by F1 to F4.
	Pills []string `toml:"pills" yaml:"pills"`

	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		ShowLineNumbers: true,
		LogLevel:        "info",
	}
}

// Validate reports the first invalid field.
func (s Settings) Validate() error {
	if s.HistoryLimit < -1 {
		return fmt.Errorf("history_limit must be >= -1, got %d", s.HistoryLimit)
	}
	if len(s.Pills) > 4 {
		return fmt.Errorf("at most 4 pills, got %d", len(s.Pills))
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	if _, err := s.Table(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (s Settings) Level() (log.Level, error) {
	if s.LogLevel == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// PillLabels returns Pills as the fixed array the editor expects.
func (s Settings) PillLabels() [4]string {
	var out [4]string
	copy(out[:], s.Pills)
	return out
}

// Table returns the default composition table overlaid with Kana.
func (s Settings) Table() (*ime.Table, error) {
	base := ime.DefaultTable()
	if len(s.Kana) == 0 {
		return base, nil
	}

	keys := make([]string, 0, len(s.Kana))
	for k := range s.Kana {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]ime.Entry, 0, len(keys))
	for _, k := range keys {
		seq, err := ime.Romaji(k)
		if err != nil {
			return nil, fmt.Errorf("kana: %w", err)
		}
		entries = append(entries, ime.Entry{Seq: seq, Text: s.Kana[k]})
	}
	return base.Merge(ime.NewTable(entries...)), nil
}
