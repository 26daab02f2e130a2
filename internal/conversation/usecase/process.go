package usecase

import (
	"context"

	"babygpt/internal/conversation"
	"babygpt/internal/model"
)

// Process runs one conversation turn, streaming reply fragments.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input conversation.ProcessInput) (<-chan conversation.Chunk, error) {
	if sc.Username == "" {
		return nil, conversation.ErrEmptyUsername
	}
	if input.Content == "" {
		return nil, conversation.ErrEmptyContent
	}

	sess := uc.ensureSession(sc.Username)
	return uc.runTurn(ctx, sc, sess, input.Content), nil
}

// runTurn appends the user message, delegates to the gateway, and folds the
// outcome back into history. A gateway failure is recorded as a system entry
// and surfaced as an error chunk; it never terminates the session.
func (uc *implUseCase) runTurn(ctx context.Context, sc model.Scope, sess *session, content string) <-chan conversation.Chunk {
	sess.append(model.NewMessage(model.RoleUser, content))
	history := sess.snapshot()

	ch := make(chan conversation.Chunk)
	go func() {
		defer close(ch)

		reply, err := uc.gateway.Run(ctx, sc, history, func(delta string) {
			ch <- conversation.Chunk{Content: delta}
		})
		if err != nil {
			uc.l.Errorf(ctx, "conversation turn failed for %s: %v", sc.Username, err)
			text := "Error processing message: " + err.Error()
			sess.append(model.NewMessage(model.RoleSystem, text))
			ch <- conversation.Chunk{Content: text, Err: err}
			return
		}

		sess.append(model.NewMessage(model.RoleAssistant, reply))
	}()
	return ch
}
