package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"babygpt/internal/agent"
	"babygpt/internal/model"
	"babygpt/internal/plan"
	pkgLog "babygpt/pkg/log"
)

type WritePlanTool struct {
	planRepo plan.Repository
	l        pkgLog.Logger
}

func NewWritePlanTool(planRepo plan.Repository, l pkgLog.Logger) *WritePlanTool {
	return &WritePlanTool{
		planRepo: planRepo,
		l:        l,
	}
}

func (t *WritePlanTool) Name() string {
	return "write_plan"
}

func (t *WritePlanTool) Description() string {
	return "Replace the user's entire pregnancy plan with new markdown content. Prefer update_plan_section for single-section changes."
}

func (t *WritePlanTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Full markdown content of the plan, using '## ' headings for sections",
			},
		},
		"required": []string{"content"},
	}
}

type WritePlanInput struct {
	Content string `json:"content"`
}

type WritePlanOutput struct {
	Written bool   `json:"written"`
	Summary string `json:"summary"`
}

func (t *WritePlanTool) Execute(ctx context.Context, sc model.Scope, input map[string]interface{}) (interface{}, error) {
	// Parse input
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params WritePlanInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "write_plan: username=%s bytes=%d", sc.Username, len(params.Content))

	if err := t.planRepo.Write(ctx, sc.Username, params.Content); err != nil {
		return nil, fmt.Errorf("failed to write plan: %w", err)
	}

	return WritePlanOutput{
		Written: true,
		Summary: "Pregnancy plan saved.",
	}, nil
}

var _ agent.Tool = (*WritePlanTool)(nil)
