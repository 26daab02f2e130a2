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

type UpdatePlanSectionTool struct {
	planRepo plan.Repository
	l        pkgLog.Logger
}

func NewUpdatePlanSectionTool(planRepo plan.Repository, l pkgLog.Logger) *UpdatePlanSectionTool {
	return &UpdatePlanSectionTool{
		planRepo: planRepo,
		l:        l,
	}
}

func (t *UpdatePlanSectionTool) Name() string {
	return "update_plan_section"
}

func (t *UpdatePlanSectionTool) Description() string {
	return "Replace one '## ' section of the user's pregnancy plan, or append it as a new section when no heading matches exactly. Other sections are left untouched."
}

func (t *UpdatePlanSectionTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"section": map[string]interface{}{
				"type":        "string",
				"description": "Exact section heading without the '## ' prefix, e.g. 'Nutrition'",
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "New markdown body for the section (heading excluded)",
			},
		},
		"required": []string{"section", "content"},
	}
}

type UpdatePlanSectionInput struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

type UpdatePlanSectionOutput struct {
	Section string `json:"section"`
	Updated bool   `json:"updated"`
	Summary string `json:"summary"`
}

func (t *UpdatePlanSectionTool) Execute(ctx context.Context, sc model.Scope, input map[string]interface{}) (interface{}, error) {
	// Parse input
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params UpdatePlanSectionInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "update_plan_section: username=%s section=%q", sc.Username, params.Section)

	if err := t.planRepo.UpdateSection(ctx, sc.Username, params.Section, params.Content); err != nil {
		return nil, fmt.Errorf("failed to update plan section: %w", err)
	}

	return UpdatePlanSectionOutput{
		Section: params.Section,
		Updated: true,
		Summary: fmt.Sprintf("Section %q updated in the pregnancy plan.", params.Section),
	}, nil
}

var _ agent.Tool = (*UpdatePlanSectionTool)(nil)
