package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/catstore"
	"github.com/spendlens/spendlens/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new spendlens workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir)
		},
	}
	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating directories: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("workspace already initialized: %s exists", cfgPath)
	}

	cfg := config.Default()
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the category store so the dictionary file exists from the start.
	store := catstore.Open(resolvePath(dir, cfg.Store.Path))
	if err := store.Save(); err != nil {
		return fmt.Errorf("writing category store: %w", err)
	}

	cmd.Printf("Initialized spendlens workspace in %s\n", dir)
	return nil
}
