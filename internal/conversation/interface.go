package conversation

import (
	"context"

	"babygpt/internal/model"
)

// UseCase manages per-user conversation sessions and their pregnancy plans.
//
// Callers must not issue two Process calls for the same username
// concurrently; history append order is only guaranteed per caller.
type UseCase interface {
	// Start activates a session and streams the assistant's opening turn.
	// Returns ErrAlreadyStarted if the session is already active.
	Start(ctx context.Context, sc model.Scope) (<-chan Chunk, error)

	// Process runs one conversation turn, streaming reply fragments.
	// Activates the session first when needed, without the opening greeting.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (<-chan Chunk, error)

	// History returns a snapshot of the session's message history.
	// Empty for usernames that never interacted.
	History(ctx context.Context, sc model.Scope) ([]model.Message, error)

	// Plan returns the user's pregnancy plan snapshot. Blank content if the
	// plan was never written.
	Plan(ctx context.Context, sc model.Scope) (model.Plan, error)

	// UpdatePlan overwrites the user's entire plan document and returns the
	// resulting snapshot.
	UpdatePlan(ctx context.Context, sc model.Scope, input UpdatePlanInput) (model.Plan, error)
}

// Gateway runs one assistant turn over the full message history.
// Implementations may call plan tools any number of times before producing
// the reply. onDelta receives incremental reply fragments and may be nil.
type Gateway interface {
	Run(ctx context.Context, sc model.Scope, history []model.Message, onDelta func(string)) (string, error)
}
