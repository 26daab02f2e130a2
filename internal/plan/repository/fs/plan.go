package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"babygpt/internal/model"
	"babygpt/internal/plan"
	pkgLog "babygpt/pkg/log"
)

// PlanFileName is the single file kept inside each user's plan directory.
const PlanFileName = "pregnancy_plan.md"

type repository struct {
	l        pkgLog.Logger
	plansDir string
}

// New creates a filesystem-backed plan repository rooted at plansDir.
// Layout: <plansDir>/<username>/pregnancy_plan.md, nothing else.
func New(l pkgLog.Logger, plansDir string) (plan.Repository, error) {
	if plansDir == "" {
		plansDir = "plans"
	}
	if err := os.MkdirAll(plansDir, 0o755); err != nil {
		return nil, fmt.Errorf("plan repository: failed to create plans dir: %w", err)
	}
	return &repository{l: l, plansDir: plansDir}, nil
}

func (r *repository) planPath(username string) string {
	return filepath.Join(r.plansDir, username, PlanFileName)
}

func (r *repository) Read(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", plan.ErrEmptyUsername
	}

	data, err := os.ReadFile(r.planPath(username))
	if err != nil {
		if os.IsNotExist(err) {
			return "", plan.ErrNotFound
		}
		return "", fmt.Errorf("plan repository: failed to read plan for %q: %w", username, err)
	}
	return string(data), nil
}

func (r *repository) Write(ctx context.Context, username string, content string) error {
	if username == "" {
		return plan.ErrEmptyUsername
	}

	path := r.planPath(username)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("plan repository: failed to create user dir for %q: %w", username, err)
	}

	// Header treatment applies exactly once, on the very first document for
	// this username. Later writes store content verbatim.
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("plan repository: failed to stat plan for %q: %w", username, err)
		}
		content = firstWriteHeader(username) + content
	}

	r.l.Infof(ctx, "plan repository: writing plan for %s (%d bytes)", username, len(content))

	if err := writeFileAtomic(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("plan repository: failed to write plan for %q: %w", username, err)
	}
	return nil
}

func (r *repository) UpdateSection(ctx context.Context, username string, section string, content string) error {
	if username == "" {
		return plan.ErrEmptyUsername
	}
	if section == "" {
		return plan.ErrEmptySection
	}

	current, err := r.Read(ctx, username)
	if err != nil && !errors.Is(err, plan.ErrNotFound) {
		return err
	}

	r.l.Infof(ctx, "plan repository: updating section %q for %s", section, username)

	return r.Write(ctx, username, mergeSection(current, section, content))
}

// mergeSection replaces the body of the named section, or appends a new
// section at the end when no heading matches.
//
// The document is split on the literal "## " delimiter; the leading chunk
// before the first heading has no section name and is never replaced. A chunk
// matches only when its heading line equals the section name exactly: a
// section named "Notes" does not touch a "Notes and Warnings" section.
func mergeSection(current, section, content string) string {
	chunks := strings.Split(current, "## ")
	matched := false
	for i, chunk := range chunks {
		if i == 0 {
			continue
		}
		if chunk == section || strings.HasPrefix(chunk, section+"\n") {
			chunks[i] = section + "\n" + content + "\n"
			matched = true
		}
	}

	if !matched {
		return current + "\n\n## " + section + "\n" + content + "\n"
	}
	return strings.Join(chunks, "## ")
}

func (r *repository) Metadata(ctx context.Context, username string) (model.PlanMetadata, error) {
	if username == "" {
		return model.PlanMetadata{}, plan.ErrEmptyUsername
	}

	path := r.planPath(username)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.PlanMetadata{PlanPath: path}, nil
		}
		return model.PlanMetadata{}, fmt.Errorf("plan repository: failed to stat plan for %q: %w", username, err)
	}

	return model.PlanMetadata{
		LastUpdated: info.ModTime().Format(time.RFC3339),
		FileSize:    info.Size(),
		PlanPath:    path,
	}, nil
}

func firstWriteHeader(username string) string {
	return fmt.Sprintf("# Pregnancy Plan for %s\n\n_Last updated: %s_\n\n",
		username, time.Now().Format("2006-01-02"))
}

// writeFileAtomic writes via a temp file + rename so readers never observe a
// partially written document.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
