package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/gridcore-go/internal/script"
	"github.com/ukaji3/gridcore-go/pkg/gridcore"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/document"
	"github.com/ukaji3/gridcore-go/pkg/gridcore/xlsx"
)

func (a *app) newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new NAME",
		Short: "Create an empty document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return document.ErrEmptyName
			}
			docs, err := a.store.LoadDocuments()
			if err != nil {
				return err
			}
			docs = append(docs, document.New(name))
			if err := a.store.SaveDocuments(docs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", len(docs), name)
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents in the state file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.store.LoadDocuments()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, doc := range docs {
				cells := 0
				for _, s := range doc.Sheets() {
					cells += s.Cells.Len()
				}
				fmt.Fprintf(out, "%d\t%s\t%d sheets\t%d cells\n", i+1, doc.Name, doc.Len(), cells)
			}
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	var sheetNum int
	cmd := &cobra.Command{
		Use:   "show DOC",
		Short: "Print the non-empty cells of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.store.LoadDocuments()
			if err != nil {
				return err
			}
			i, err := findDocument(docs, args[0])
			if err != nil {
				return err
			}
			doc := docs[i]
			sheet := doc.Active()
			if sheetNum > 0 {
				if sheet, err = doc.Sheet(sheetNum - 1); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s / %s\n", doc.Name, sheet.Name)
			for _, addr := range sheet.Cells.Addresses() {
				name, err := xlsx.CellName(addr)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", name, sheet.Cells.Get(addr))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&sheetNum, "sheet", 0, "1-based sheet number (default: active sheet)")
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit DOC [SCRIPT]",
		Short: "Apply edit commands to a document",
		Long: `Apply line-oriented edit commands (set, clear, swap, swap-rows, swap-cols,
swap-block, fill, begin, end, undo, redo, sheet management) to a document.
Commands are read from SCRIPT, or from stdin when SCRIPT is omitted or "-".`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.store.LoadDocuments()
			if err != nil {
				return err
			}
			i, err := findDocument(docs, args[0])
			if err != nil {
				return err
			}

			input := cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				input = f
			}

			model := gridcore.New(docs[i], gridcore.Options{
				HistoryLimit: a.cfg.HistoryLimit,
				Logger:       a.logger,
			})
			dirty := false
			unsubscribe := model.Subscribe(gridcore.ObserverFuncs{
				OnSaveRequested: func() { dirty = true },
			})
			defer unsubscribe()

			runErr := script.New(model, cmd.OutOrStdout(), a.logger).Run(input)
			if dirty {
				snapshot, err := model.Snapshot()
				if err != nil {
					return err
				}
				docs[i] = snapshot
				if err := a.store.SaveDocuments(docs); err != nil {
					return err
				}
				a.logger.Info("document saved",
					slog.String("document", snapshot.Name),
					slog.Bool("can_undo", model.CanUndo()),
					slog.Bool("can_redo", model.CanRedo()))
			}
			return runErr
		},
	}
}

func (a *app) importCmd() *cobra.Command {
	var keepFormulas, rawValues bool
	cmd := &cobra.Command{
		Use:   "import FILE.xlsx",
		Short: "Import an Excel workbook as a new document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := xlsx.Import(args[0], xlsx.Options{
				KeepFormulas: &keepFormulas,
				RawValues:    rawValues,
			})
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			docs, err := a.store.LoadDocuments()
			if err != nil {
				return err
			}
			docs = append(docs, doc)
			if err := a.store.SaveDocuments(docs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d sheets\n", len(docs), doc.Name, doc.Len())
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepFormulas, "keep-formulas", false, "Store formula text instead of cached values")
	cmd.Flags().BoolVar(&rawValues, "raw", false, "Import unformatted cell values")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var noLayout, literal bool
	cmd := &cobra.Command{
		Use:   "export DOC OUTPUT.xlsx",
		Short: "Export a document as an Excel workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := a.store.LoadDocuments()
			if err != nil {
				return err
			}
			i, err := findDocument(docs, args[0])
			if err != nil {
				return err
			}
			includeLayout := !noLayout
			writeFormulas := !literal
			opts := xlsx.Options{
				KeepFormulas:  &writeFormulas,
				IncludeLayout: &includeLayout,
			}
			if err := xlsx.Export(docs[i], args[1], opts); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			a.logger.Info("document exported", slog.String("document", docs[i].Name), slog.String("path", args[1]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noLayout, "no-layout", false, "Do not write row heights and column widths")
	cmd.Flags().BoolVar(&literal, "literal-formulas", false, "Write \"=\" prefixed values as text")
	return cmd
}
