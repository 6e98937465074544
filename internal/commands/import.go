package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/loader"
	"github.com/spendlens/spendlens/internal/model"
	"github.com/spendlens/spendlens/internal/table"
)

func newImportCommand() *cobra.Command {
	var dir string
	var out string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Load a bank CSV export into the canonical transaction table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.OutOrStdout(), dir, args[0], out)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the canonical table CSV to this file")
	return cmd
}

func runImport(w io.Writer, dir, file, out string) error {
	cfg, store, err := openWorkspace(dir)
	if err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening %s: %w", file, err)
	}
	defer f.Close()

	res, err := loader.Load(f, store, loader.Options{DayFirst: cfg.Locale.DayFirst})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Loaded %d transactions", len(res.Table.Rows))
	if res.Dropped > 0 {
		fmt.Fprintf(w, " (%d rows dropped: unparseable amount)", res.Dropped)
	}
	fmt.Fprintln(w)

	printSubset(w, "Expenses (Debits)", res.Table.Debits(), cfg)
	printSubset(w, "Payments (Credits)", res.Table.Credits(), cfg)
	printSummary(w, res.Table, cfg)

	if out != "" {
		if err := writeTable(out, res.Table); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nCanonical table written to %s\n", out)
	}
	return nil
}

func printSubset(w io.Writer, title string, rows []model.Transaction, cfg *config.Config) {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(rows) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tDETAILS\tAMOUNT\tCATEGORY")
	for _, row := range rows {
		date := ""
		if row.HasDate() {
			date = row.Date.Format("02/01/2006")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s %s\t%s\n",
			row.ID, date, row.Details, row.Amount.StringFixed(2), cfg.Locale.Currency, row.Category)
	}
	tw.Flush()
}

func printSummary(w io.Writer, t *table.Table, cfg *config.Config) {
	debits := table.Table{Rows: t.Debits()}
	sums := debits.SumByCategory()

	fmt.Fprintf(w, "\nExpense Summary\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tAMOUNT")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%s %s\n", s.Category, s.Amount.StringFixed(2), cfg.Locale.Currency)
	}
	fmt.Fprintf(tw, "Total\t%s %s\n", debits.Total().StringFixed(2), cfg.Locale.Currency)
	tw.Flush()
}

func writeTable(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := table.Write(f, t); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
