package gateway

import (
	"context"

	"babygpt/internal/agent"
	"babygpt/internal/conversation"
	"babygpt/pkg/llmprovider"
	pkgLog "babygpt/pkg/log"
)

// LLM abstracts the provider manager for mocking.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type Gateway struct {
	llm      LLM
	registry *agent.ToolRegistry
	l        pkgLog.Logger
}

func New(llm LLM, registry *agent.ToolRegistry, l pkgLog.Logger) *Gateway {
	return &Gateway{
		llm:      llm,
		registry: registry,
		l:        l,
	}
}

var _ conversation.Gateway = (*Gateway)(nil)
