package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"babygpt/internal/agent"
	"babygpt/internal/checklist"
	"babygpt/internal/model"
	"babygpt/internal/plan"
	pkgLog "babygpt/pkg/log"
)

type UpdateChecklistItemTool struct {
	planRepo  plan.Repository
	checklist checklist.Service
	l         pkgLog.Logger
}

func NewUpdateChecklistItemTool(planRepo plan.Repository, checklistSvc checklist.Service, l pkgLog.Logger) *UpdateChecklistItemTool {
	return &UpdateChecklistItemTool{
		planRepo:  planRepo,
		checklist: checklistSvc,
		l:         l,
	}
}

func (t *UpdateChecklistItemTool) Name() string {
	return "update_checklist_item"
}

func (t *UpdateChecklistItemTool) Description() string {
	return "Check or uncheck a to-do item in the pregnancy plan. Matches items by partial text, e.g. 'glucose test' matches '- [ ] Schedule glucose test'."
}

func (t *UpdateChecklistItemTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"item_text": map[string]interface{}{
				"type":        "string",
				"description": "Text of the checklist item to update (partial match)",
			},
			"checked": map[string]interface{}{
				"type":        "boolean",
				"description": "true to mark done, false to reopen",
			},
		},
		"required": []string{"item_text", "checked"},
	}
}

type UpdateChecklistItemInput struct {
	ItemText string `json:"item_text"`
	Checked  bool   `json:"checked"`
}

type UpdateChecklistItemOutput struct {
	Updated bool   `json:"updated"`
	Count   int    `json:"count"`
	Summary string `json:"summary"`
}

func (t *UpdateChecklistItemTool) Execute(ctx context.Context, sc model.Scope, input map[string]interface{}) (interface{}, error) {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params UpdateChecklistItemInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if params.ItemText == "" {
		return nil, fmt.Errorf("item_text is required")
	}

	content, err := t.planRepo.Read(ctx, sc.Username)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return UpdateChecklistItemOutput{
				Summary: "No pregnancy plan exists yet, so there is no checklist to update.",
			}, nil
		}
		return nil, err
	}

	result, err := t.checklist.UpdateCheckbox(ctx, checklist.UpdateCheckboxInput{
		Content:      content,
		CheckboxText: params.ItemText,
		Checked:      params.Checked,
	})
	if err != nil {
		return nil, err
	}

	if !result.Updated {
		return UpdateChecklistItemOutput{
			Summary: fmt.Sprintf("No checklist item matching %q was found in the plan.", params.ItemText),
		}, nil
	}

	if err := t.planRepo.Write(ctx, sc.Username, result.Content); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	t.l.Infof(ctx, "update_checklist_item: username=%s item=%q checked=%v count=%d", sc.Username, params.ItemText, params.Checked, result.Count)

	state := "reopened"
	if params.Checked {
		state = "marked done"
	}
	return UpdateChecklistItemOutput{
		Updated: true,
		Count:   result.Count,
		Summary: fmt.Sprintf("%d checklist item(s) matching %q %s.", result.Count, params.ItemText, state),
	}, nil
}

var _ agent.Tool = (*UpdateChecklistItemTool)(nil)
