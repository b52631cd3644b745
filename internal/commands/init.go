package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/forecast/internal/catalog"
	"github.com/cleared-dev/forecast/internal/config"
	"github.com/cleared-dev/forecast/internal/gitops"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new forecast workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.dir
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.Context(), cmd.OutOrStdout(), absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(ctx context.Context, out io.Writer, dir, name string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(name)

	// Create directory structure.
	dirs := []string{
		filepath.Dir(cfg.Storage.Path),
		cfg.Export.Dir,
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	svc := catalog.NewService(catalog.DefaultCategories())
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}

	// The database is rebuilt from exports; only the JSON is versioned.
	gitignore := ".env\n*.db\n*.db-shm\n*.db-wal\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "logs", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if !gitops.Available() {
		fmt.Fprintf(out, "Initialized forecast workspace at %s (git not found, not versioned)\n", dir)
		return nil
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(ctx, dir); err != nil {
			return err
		}
	}

	hash, err := gitops.CommitAll(ctx, dir, "init: Initialize "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized forecast workspace at %s (%s)\n", dir, hash)
	return nil
}
