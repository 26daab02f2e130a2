package tools

import (
	"context"
	"errors"
	"fmt"

	"babygpt/internal/agent"
	"babygpt/internal/checklist"
	"babygpt/internal/model"
	"babygpt/internal/plan"
	pkgLog "babygpt/pkg/log"
)

type GetChecklistProgressTool struct {
	planRepo  plan.Repository
	checklist checklist.Service
	l         pkgLog.Logger
}

func NewGetChecklistProgressTool(planRepo plan.Repository, checklistSvc checklist.Service, l pkgLog.Logger) *GetChecklistProgressTool {
	return &GetChecklistProgressTool{
		planRepo:  planRepo,
		checklist: checklistSvc,
		l:         l,
	}
}

func (t *GetChecklistProgressTool) Name() string {
	return "get_checklist_progress"
}

func (t *GetChecklistProgressTool) Description() string {
	return "Report how many to-do items in the pregnancy plan are done versus pending."
}

func (t *GetChecklistProgressTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

type GetChecklistProgressOutput struct {
	Total     int      `json:"total"`
	Completed int      `json:"completed"`
	Pending   []string `json:"pending"`
	Progress  float64  `json:"progress"`
	Summary   string   `json:"summary"`
}

func (t *GetChecklistProgressTool) Execute(ctx context.Context, sc model.Scope, input map[string]interface{}) (interface{}, error) {
	content, err := t.planRepo.Read(ctx, sc.Username)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			return GetChecklistProgressOutput{
				Pending: []string{},
				Summary: "No pregnancy plan exists yet.",
			}, nil
		}
		return nil, err
	}

	stats := t.checklist.GetStats(content)
	if stats.Total == 0 {
		return GetChecklistProgressOutput{
			Pending: []string{},
			Summary: "The plan has no checklist items yet.",
		}, nil
	}

	pending := make([]string, 0, stats.Pending)
	for _, cb := range t.checklist.ParseCheckboxes(content) {
		if !cb.Checked {
			pending = append(pending, cb.Text)
		}
	}

	t.l.Debugf(ctx, "get_checklist_progress: username=%s total=%d completed=%d", sc.Username, stats.Total, stats.Completed)

	return GetChecklistProgressOutput{
		Total:     stats.Total,
		Completed: stats.Completed,
		Pending:   pending,
		Progress:  stats.Progress,
		Summary:   fmt.Sprintf("%d of %d checklist items done (%.0f%%).", stats.Completed, stats.Total, stats.Progress),
	}, nil
}

var _ agent.Tool = (*GetChecklistProgressTool)(nil)
