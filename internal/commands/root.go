package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/buildinfo"
	"github.com/spendlens/spendlens/internal/catstore"
	"github.com/spendlens/spendlens/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "spendlens",
		Short:   "Bank CSV ingestion and keyword categorization",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newCategoryCommand())

	return rootCmd
}

// openWorkspace loads the workspace config and category store rooted at dir.
// A missing config file falls back to defaults; relative paths in the config
// resolve against dir.
func openWorkspace(dir string) (*config.Config, *catstore.Store, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, err
		}
		cfg = config.Default()
	}

	store := catstore.Open(resolvePath(dir, cfg.Store.Path))
	return cfg, store, nil
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
