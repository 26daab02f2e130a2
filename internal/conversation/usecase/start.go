package usecase

import (
	"context"
	"errors"

	"babygpt/internal/conversation"
	"babygpt/internal/model"
	"babygpt/internal/plan"
)

// GreetingMessage is the synthesized user turn that opens a conversation.
const GreetingMessage = "Hello, I'm ready to help you with your pregnancy journey. Let's get started!"

// Start activates a session and streams the assistant's opening turn.
func (uc *implUseCase) Start(ctx context.Context, sc model.Scope) (<-chan conversation.Chunk, error) {
	if sc.Username == "" {
		return nil, conversation.ErrEmptyUsername
	}

	uc.mu.Lock()
	if _, ok := uc.sessions.Get(sc.Username); ok {
		uc.mu.Unlock()
		uc.l.Warnf(ctx, "conversation.Start: session already active for %s", sc.Username)
		return nil, conversation.ErrAlreadyStarted
	}
	sess := &session{}
	uc.sessions.Add(sc.Username, sess)
	uc.mu.Unlock()

	uc.l.Infof(ctx, "conversation.Start: new session for %s", sc.Username)

	uc.scaffoldPlan(ctx, sc)

	return uc.runTurn(ctx, sc, sess, GreetingMessage), nil
}

// scaffoldPlan writes the initial section skeleton for first-time users so
// the agent has named sections to fill in. Failure is not fatal to Start;
// the agent can still write the plan from scratch.
func (uc *implUseCase) scaffoldPlan(ctx context.Context, sc model.Scope) {
	if _, err := uc.planRepo.Read(ctx, sc.Username); err == nil {
		return
	} else if !errors.Is(err, plan.ErrNotFound) {
		uc.l.Warnf(ctx, "conversation.Start: failed to read plan for %s: %v", sc.Username, err)
		return
	}

	if err := uc.planRepo.Write(ctx, sc.Username, plan.Scaffold()); err != nil {
		uc.l.Warnf(ctx, "conversation.Start: failed to scaffold plan for %s: %v", sc.Username, err)
	}
}
