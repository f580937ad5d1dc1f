package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/kanapad/config"
	"github.com/iw2rmb/kanapad/internal/logging"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Edit a file (default command)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	settings, cfgPath, err := loadSettings()
	if err != nil {
		return err
	}
	level, err := settings.Level()
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Open(flags.logFile, level)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With("session", uuid.NewString())

	path := settings.File
	if len(args) > 0 {
		path = args[0]
	}
	doc, err := openDocument(path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		newApp(settings, doc, logger, systemClipboard{}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := config.Watch(ctx, cfgPath, func(s config.Settings, err error) {
		p.Send(settingsMsg{settings: s, err: err})
	}); err != nil {
		logger.Debug("config watch disabled", "path", cfgPath, "err", err)
	}

	logger.Info("edit", "file", doc.path, "config", cfgPath)
	_, err = p.Run()
	return err
}
