// Package main provides the CLI entry point for gridcore.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/gridcore-go/internal/config"
	"github.com/ukaji3/gridcore-go/internal/logging"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/document"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/store"
)

type app struct {
	configPath   string
	statePath    string
	logLevel     string
	logFormat    string
	historyLimit int

	cfg    config.Config
	logger *slog.Logger
	store  *store.FileStore
	stderr io.Writer
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}
	rootCmd := &cobra.Command{
		Use:   "gridcore",
		Short: "Edit spreadsheet documents with per-sheet undo history",
		Long: `gridcore keeps a library of sparse spreadsheet documents in a JSON state
file, applies scripted edits with undo/redo, and converts documents to and
from .xlsx workbooks.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.statePath, "state", "", "State file path (default from GRIDCORE_STATE_FILE)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text, json")
	flags.IntVar(&a.historyLimit, "history-limit", 0, "Maximum undo depth per sheet (0 = unlimited)")

	rootCmd.AddCommand(
		a.newCmd(),
		a.listCmd(),
		a.showCmd(),
		a.editCmd(),
		a.importCmd(),
		a.exportCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("state") {
		cfg.StateFile = a.statePath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("history-limit") {
		if a.historyLimit < 0 {
			return fmt.Errorf("invalid history limit: %d", a.historyLimit)
		}
		cfg.HistoryLimit = a.historyLimit
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, a.stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.store = store.NewFileStore(cfg.StateFile, logger)
	return nil
}

// findDocument resolves ref as a 1-based index or, failing that, a
// case-insensitive document name.
func findDocument(docs []*document.Document, ref string) (int, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(docs) {
			return 0, fmt.Errorf("document index out of range: %d", n)
		}
		return n - 1, nil
	}
	for i, doc := range docs {
		if strings.EqualFold(doc.Name, ref) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("document not found: %s", ref)
}
