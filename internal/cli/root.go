// Package cli wires the kanapad commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/kanapad/config"
)

var flags struct {
	config   string
	logFile  string
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:   "kanapad [file]",
	Short: "kanapad – line-based text editor with kana input",
	Long: "kanapad edits plain-text notes in the terminal. Lines starting with\n" +
		"heading, bullet, numbered, code or WARNING markers are styled as you type,\n" +
		"and ctrl+k switches to romaji-to-kana composition.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: edit
		return runEdit(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "settings file (default <user config dir>/kanapad/config.toml)")
	pf.StringVar(&flags.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func settingsPath() (string, error) {
	if flags.config != "" {
		return flags.config, nil
	}
	return config.DefaultPath()
}

// loadSettings reads the settings file and applies flag overrides.
func loadSettings() (config.Settings, string, error) {
	path, err := settingsPath()
	if err != nil {
		return config.Settings{}, "", err
	}
	s, err := config.Load(path)
	if err != nil {
		return config.Settings{}, path, err
	}
	if flags.logLevel != "" {
		s.LogLevel = flags.logLevel
		if _, err := s.Level(); err != nil {
			return config.Settings{}, path, err
		}
	}
	return s, path, nil
}
