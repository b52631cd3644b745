package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/forecast/internal/config"
	"github.com/cleared-dev/forecast/internal/gitops"
	"github.com/cleared-dev/forecast/internal/scenario/sqlite"
)

// workspace is a directory holding forecast.yaml and the files it points at.
type workspace struct {
	Root        string
	Config      *config.Config
	Initialized bool // forecast.yaml exists
}

// loadWorkspace reads <dir>/forecast.yaml with environment overrides applied.
// A directory without one gets the default configuration.
func loadWorkspace(dir string) (*workspace, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	ws := &workspace{Root: root, Config: config.Default("")}
	path := filepath.Join(root, config.FileName)
	switch _, err := os.Stat(path); {
	case err == nil:
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		ws.Config = cfg
		ws.Initialized = true
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	if err := config.ApplyEnv(root, ws.Config); err != nil {
		return nil, err
	}
	return ws, nil
}

func (w *workspace) requireInit() error {
	if !w.Initialized {
		return fmt.Errorf("no %s in %s (run \"forecast init\" first)", config.FileName, w.Root)
	}
	return nil
}

// openStore opens the workspace's scenario database.
func (w *workspace) openStore(ctx context.Context) (*sqlite.Store, error) {
	if err := w.requireInit(); err != nil {
		return nil, err
	}
	path := w.Config.StoragePath(w.Root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating storage dir: %w", err)
	}
	return sqlite.Open(ctx, path)
}

// commit records the workspace state in git when auto-commit is enabled.
func (w *workspace) commit(ctx context.Context, message string) error {
	logger := zerolog.Ctx(ctx)
	if !w.Config.Git.AutoCommit {
		return nil
	}
	if !gitops.IsRepo(w.Root) {
		logger.Debug().Str("workspace", w.Root).Msg("not a git repository, skipping commit")
		return nil
	}
	hash, err := gitops.CommitAll(ctx, w.Root, message, w.Config.Git.AuthorName, w.Config.Git.AuthorEmail)
	if err != nil {
		return err
	}
	if hash != "" {
		logger.Info().Str("commit", hash).Msg(message)
	}
	return nil
}

// resolve joins a relative path onto the workspace root.
func (w *workspace) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.Root, path)
}
