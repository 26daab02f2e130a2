package fs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"babygpt/internal/plan"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRepo(t *testing.T) plan.Repository {
	t.Helper()
	repo, err := New(&mockLogger{}, t.TempDir())
	if err != nil {
		t.Fatalf("failed to create repo: %v", err)
	}
	return repo
}

func TestRead(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("never written returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Read(ctx, "nobody")
		if !errors.Is(err, plan.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty username rejected", func(t *testing.T) {
		_, err := repo.Read(ctx, "")
		if !errors.Is(err, plan.ErrEmptyUsername) {
			t.Errorf("expected ErrEmptyUsername, got %v", err)
		}
	})
}

func TestWrite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("first write prepends header", func(t *testing.T) {
		if err := repo.Write(ctx, "alice", "X"); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		got, err := repo.Read(ctx, "alice")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if !strings.Contains(got, "X") {
			t.Errorf("document missing content, got %q", got)
		}
		if !strings.Contains(got, "# Pregnancy Plan for alice") {
			t.Errorf("first write missing header, got %q", got)
		}
	})

	t.Run("second write stores content verbatim", func(t *testing.T) {
		content := "# My Plan\n\n## Stage\n12 weeks\n"
		if err := repo.Write(ctx, "bob", "initial"); err != nil {
			t.Fatalf("first write failed: %v", err)
		}
		if err := repo.Write(ctx, "bob", content); err != nil {
			t.Fatalf("second write failed: %v", err)
		}

		got, err := repo.Read(ctx, "bob")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if got != content {
			t.Errorf("expected verbatim content %q, got %q", content, got)
		}
	})

	t.Run("round trip is stable once a document exists", func(t *testing.T) {
		content := "## Notes\nkeep hydrated\n"
		if err := repo.Write(ctx, "carol", "seed"); err != nil {
			t.Fatalf("seed write failed: %v", err)
		}
		if err := repo.Write(ctx, "carol", content); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if err := repo.Write(ctx, "carol", content); err != nil {
			t.Fatalf("rewrite failed: %v", err)
		}

		got, _ := repo.Read(ctx, "carol")
		if got != content {
			t.Errorf("expected %q after rewrite, got %q", content, got)
		}
	})
}

func TestUpdateSection(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces existing section body", func(t *testing.T) {
		repo := newTestRepo(t)
		if err := repo.UpdateSection(ctx, "alice", "Notes", "A"); err != nil {
			t.Fatalf("first update failed: %v", err)
		}
		if err := repo.UpdateSection(ctx, "alice", "Notes", "B"); err != nil {
			t.Fatalf("second update failed: %v", err)
		}

		got, err := repo.Read(ctx, "alice")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if !strings.Contains(got, "## Notes\nB\n") {
			t.Errorf("expected replaced body B, got %q", got)
		}
		if strings.Contains(got, "## Notes\nA\n") {
			t.Errorf("old body A still present: %q", got)
		}
	})

	t.Run("appends when no heading matches", func(t *testing.T) {
		repo := newTestRepo(t)
		original := "intro text\n\n## Stage\n12 weeks\n"
		if err := repo.Write(ctx, "bob", "seed"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if err := repo.Write(ctx, "bob", original); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if err := repo.UpdateSection(ctx, "bob", "NewSection", "hello"); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		got, _ := repo.Read(ctx, "bob")
		if !strings.Contains(got, original) {
			t.Errorf("original content changed: %q", got)
		}
		if !strings.Contains(got, "## NewSection\nhello\n") {
			t.Errorf("new section missing: %q", got)
		}
	})

	t.Run("exact heading match only", func(t *testing.T) {
		repo := newTestRepo(t)
		doc := "## Notes and Warnings\ndo not touch\n\n## Notes\nold\n"
		if err := repo.Write(ctx, "carol", "seed"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if err := repo.Write(ctx, "carol", doc); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if err := repo.UpdateSection(ctx, "carol", "Notes", "new"); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		got, _ := repo.Read(ctx, "carol")
		if !strings.Contains(got, "## Notes and Warnings\ndo not touch") {
			t.Errorf("prefix-named sibling section was clobbered: %q", got)
		}
		if !strings.Contains(got, "## Notes\nnew\n") {
			t.Errorf("target section not replaced: %q", got)
		}
	})

	t.Run("creates document when absent", func(t *testing.T) {
		repo := newTestRepo(t)
		if err := repo.UpdateSection(ctx, "dave", "Stage", "8 weeks"); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		got, err := repo.Read(ctx, "dave")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if !strings.Contains(got, "## Stage\n8 weeks\n") {
			t.Errorf("section missing from fresh document: %q", got)
		}
	})

	t.Run("idempotent for identical arguments", func(t *testing.T) {
		repo := newTestRepo(t)
		if err := repo.Write(ctx, "erin", "seed"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if err := repo.UpdateSection(ctx, "erin", "Diet", "more iron"); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		first, _ := repo.Read(ctx, "erin")
		if err := repo.UpdateSection(ctx, "erin", "Diet", "more iron"); err != nil {
			t.Fatalf("repeat update failed: %v", err)
		}
		second, _ := repo.Read(ctx, "erin")
		if first != second {
			t.Errorf("repeated update changed document:\nfirst:  %q\nsecond: %q", first, second)
		}
	})
}

func TestMetadata(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("never written", func(t *testing.T) {
		md, err := repo.Metadata(ctx, "ghost")
		if err != nil {
			t.Fatalf("metadata failed: %v", err)
		}
		if md.LastUpdated != "" {
			t.Errorf("expected empty LastUpdated, got %q", md.LastUpdated)
		}
		if md.FileSize != 0 {
			t.Errorf("expected size 0, got %d", md.FileSize)
		}
		if md.PlanPath == "" {
			t.Error("expected plan path to be populated")
		}
	})

	t.Run("after write", func(t *testing.T) {
		if err := repo.Write(ctx, "alice", "content"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		md, err := repo.Metadata(ctx, "alice")
		if err != nil {
			t.Fatalf("metadata failed: %v", err)
		}
		if md.LastUpdated == "" {
			t.Error("expected LastUpdated to be set")
		}
		if md.FileSize == 0 {
			t.Error("expected non-zero file size")
		}
	})
}
