package tools

import (
	"context"
	"errors"

	"babygpt/internal/agent"
	"babygpt/internal/model"
	"babygpt/internal/plan"
	pkgLog "babygpt/pkg/log"
)

type ReadPlanTool struct {
	planRepo plan.Repository
	l        pkgLog.Logger
}

func NewReadPlanTool(planRepo plan.Repository, l pkgLog.Logger) *ReadPlanTool {
	return &ReadPlanTool{
		planRepo: planRepo,
		l:        l,
	}
}

func (t *ReadPlanTool) Name() string {
	return "read_plan"
}

func (t *ReadPlanTool) Description() string {
	return "Read the user's current pregnancy plan as markdown. Use this before answering questions about the plan or before updating it."
}

func (t *ReadPlanTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

type ReadPlanOutput struct {
	Content string `json:"content"`
	Exists  bool   `json:"exists"`
	Summary string `json:"summary"`
}

func (t *ReadPlanTool) Execute(ctx context.Context, sc model.Scope, input map[string]interface{}) (interface{}, error) {
	t.l.Infof(ctx, "read_plan: username=%s", sc.Username)

	content, err := t.planRepo.Read(ctx, sc.Username)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return ReadPlanOutput{
				Content: "",
				Exists:  false,
				Summary: "No pregnancy plan exists yet for this user. Use write_plan to create one.",
			}, nil
		}
		return nil, err
	}

	return ReadPlanOutput{
		Content: content,
		Exists:  true,
		Summary: "Current pregnancy plan loaded.",
	}, nil
}

// Verify interface compliance
var _ agent.Tool = (*ReadPlanTool)(nil)
