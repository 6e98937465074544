package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/editlog"
	"github.com/spendlens/spendlens/internal/reconcile"
	"github.com/spendlens/spendlens/internal/table"
)

func newApplyCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "apply <table.csv> <edits.csv>",
		Short: "Apply category edits to an exported table and learn their keywords",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.OutOrStdout(), dir, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	return cmd
}

func runApply(w io.Writer, dir, tablePath, editsPath string) error {
	cfg, store, err := openWorkspace(dir)
	if err != nil {
		return err
	}

	t, err := readTable(tablePath)
	if err != nil {
		return err
	}

	ef, err := os.Open(editsPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", editsPath, err)
	}
	edits, readErr := reconcile.ReadEdits(ef)
	ef.Close()
	if readErr != nil {
		return readErr
	}

	changes, applyErr := reconcile.Apply(t, edits, store)

	// Edits that succeeded stay applied even when a later one failed, so
	// the table and audit log are written out regardless.
	if len(changes) > 0 {
		if err := writeTable(tablePath, t); err != nil {
			return err
		}

		now := time.Now()
		entries := make([]editlog.Entry, len(changes))
		for i, c := range changes {
			entries[i] = editlog.Entry{
				Timestamp:     now,
				TransactionID: c.ID,
				OldCategory:   c.From,
				NewCategory:   c.To,
				Details:       c.Details,
			}
		}
		if err := editlog.Append(resolvePath(dir, cfg.Log.EditLog), entries); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "%d changes applied.\n", len(changes))
	return applyErr
}

func readTable(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := table.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}
