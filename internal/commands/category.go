package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/catstore"
)

func newCategoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage the category keyword dictionary",
	}

	cmd.AddCommand(newCategoryAddCommand())
	cmd.AddCommand(newCategoryKeywordCommand())
	cmd.AddCommand(newCategoryListCommand())
	return cmd
}

func newCategoryAddCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category with an empty keyword list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("category name must not be empty")
			}
			if err := store.AddCategory(name); err != nil {
				return err
			}
			cmd.Printf("Category %q added.\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	return cmd
}

func newCategoryKeywordCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "keyword <category> <keyword>",
		Short: "Append a keyword to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			if err := store.AddKeyword(args[0], args[1]); err != nil {
				return err
			}
			cmd.Printf("Keyword %q added to %q.\n", strings.TrimSpace(args[1]), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	return cmd
}

func newCategoryListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories and their keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openWorkspace(dir)
			if err != nil {
				return err
			}
			listCategories(cmd.OutOrStdout(), store)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "workspace directory")
	return cmd
}

func listCategories(w io.Writer, store *catstore.Store) {
	for _, name := range store.Categories() {
		kws := store.Keywords(name)
		if len(kws) == 0 {
			fmt.Fprintf(w, "%s\n", name)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", name, strings.Join(kws, ", "))
	}
}
