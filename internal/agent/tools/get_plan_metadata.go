package tools

import (
	"context"

	"babygpt/internal/agent"
	"babygpt/internal/model"
	"babygpt/internal/plan"
	pkgLog "babygpt/pkg/log"
)

type GetPlanMetadataTool struct {
	planRepo plan.Repository
	l        pkgLog.Logger
}

func NewGetPlanMetadataTool(planRepo plan.Repository, l pkgLog.Logger) *GetPlanMetadataTool {
	return &GetPlanMetadataTool{
		planRepo: planRepo,
		l:        l,
	}
}

func (t *GetPlanMetadataTool) Name() string {
	return "get_plan_metadata"
}

func (t *GetPlanMetadataTool) Description() string {
	return "Get metadata about the user's pregnancy plan: last update time and file size. Cheaper than read_plan when the content itself is not needed."
}

func (t *GetPlanMetadataTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

type GetPlanMetadataOutput struct {
	LastUpdated string `json:"last_updated"`
	FileSize    int64  `json:"file_size"`
	Exists      bool   `json:"exists"`
}

func (t *GetPlanMetadataTool) Execute(ctx context.Context, sc model.Scope, input map[string]interface{}) (interface{}, error) {
	t.l.Infof(ctx, "get_plan_metadata: username=%s", sc.Username)

	meta, err := t.planRepo.Metadata(ctx, sc.Username)
	if err != nil {
		return nil, err
	}

	return GetPlanMetadataOutput{
		LastUpdated: meta.LastUpdated,
		FileSize:    meta.FileSize,
		Exists:      meta.LastUpdated != "",
	}, nil
}

var _ agent.Tool = (*GetPlanMetadataTool)(nil)
