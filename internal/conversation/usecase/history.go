package usecase

import (
	"context"

	"babygpt/internal/conversation"
	"babygpt/internal/model"
)

// History returns a snapshot of the session's message history.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) ([]model.Message, error) {
	if sc.Username == "" {
		return nil, conversation.ErrEmptyUsername
	}

	sess, ok := uc.getSession(sc.Username)
	if !ok {
		return []model.Message{}, nil
	}
	return sess.snapshot(), nil
}
