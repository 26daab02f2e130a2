package usecase

import (
	"context"
	"errors"

	"babygpt/internal/conversation"
	"babygpt/internal/model"
	"babygpt/internal/plan"
)

// Plan returns the user's pregnancy plan snapshot.
func (uc *implUseCase) Plan(ctx context.Context, sc model.Scope) (model.Plan, error) {
	if sc.Username == "" {
		return model.Plan{}, conversation.ErrEmptyUsername
	}

	content, err := uc.planRepo.Read(ctx, sc.Username)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return model.Plan{}, nil
		}
		return model.Plan{}, err
	}

	meta, err := uc.planRepo.Metadata(ctx, sc.Username)
	if err != nil {
		return model.Plan{}, err
	}

	return model.Plan{
		Content:     content,
		LastUpdated: meta.LastUpdated,
	}, nil
}

// UpdatePlan overwrites the user's entire plan document.
func (uc *implUseCase) UpdatePlan(ctx context.Context, sc model.Scope, input conversation.UpdatePlanInput) (model.Plan, error) {
	if sc.Username == "" {
		return model.Plan{}, conversation.ErrEmptyUsername
	}
	if input.Content == "" {
		return model.Plan{}, conversation.ErrEmptyPlan
	}

	uc.ensureSession(sc.Username)

	if err := uc.planRepo.Write(ctx, sc.Username, input.Content); err != nil {
		return model.Plan{}, err
	}

	uc.l.Infof(ctx, "conversation.UpdatePlan: plan overwritten for %s", sc.Username)
	return uc.Plan(ctx, sc)
}
