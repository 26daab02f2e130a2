package plan

import (
	"context"

	"babygpt/internal/model"
)

// Repository persists one markdown plan document per username.
//
// Concurrency: UpdateSection is read-modify-write with no per-user locking.
// Concurrent writers for the same username can lose updates; callers are
// expected not to run two mutations for one username at the same time.
type Repository interface {
	// Read returns the full document text, or ErrNotFound if the user has
	// never had a plan written.
	Read(ctx context.Context, username string) (string, error)

	// Write overwrites the full document. The very first write for a
	// username gets a generated title header prepended; every later write
	// stores content verbatim.
	Write(ctx context.Context, username string, content string) error

	// UpdateSection replaces the body of the named "## " section, or appends
	// a new section at the end of the document if no heading matches.
	UpdateSection(ctx context.Context, username string, section string, content string) error

	// Metadata returns filesystem-derived metadata. All fields except the
	// path are zero-valued when no document exists.
	Metadata(ctx context.Context, username string) (model.PlanMetadata, error)
}
