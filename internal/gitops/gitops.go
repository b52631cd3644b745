// Package gitops versions a workspace with the git binary.
package gitops

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Init initializes a new git repository at dir.
func Init(ctx context.Context, dir string) error {
	if _, err := run(ctx, dir, "init", "-q"); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// HasChanges reports whether the working tree has anything to commit.
func HasChanges(ctx context.Context, dir string) (bool, error) {
	out, err := run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("git status: %w", err)
	}
	return strings.TrimSpace(out) != "", nil
}

// CommitAll stages all files and creates a commit. Returns the short commit
// hash, or "" when there was nothing to commit.
func CommitAll(ctx context.Context, dir, message, authorName, authorEmail string) (string, error) {
	changed, err := HasChanges(ctx, dir)
	if err != nil {
		return "", err
	}
	if !changed {
		return "", nil
	}

	if _, err := run(ctx, dir, "add", "-A"); err != nil {
		return "", fmt.Errorf("git add: %w", err)
	}

	// The committer identity is set per call so commits work on machines
	// without a global git config.
	author := fmt.Sprintf("%s <%s>", authorName, authorEmail)
	if _, err := run(ctx, dir,
		"-c", "user.name="+authorName, "-c", "user.email="+authorEmail,
		"commit", "-q", "-m", message, "--author", author,
	); err != nil {
		return "", fmt.Errorf("git commit: %w", err)
	}

	out, err := run(ctx, dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s: %w", strings.TrimSpace(string(out)), err)
	}
	return string(out), nil
}
