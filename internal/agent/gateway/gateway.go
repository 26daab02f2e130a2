package gateway

import (
	"context"
	"fmt"

	"babygpt/internal/model"
	"babygpt/pkg/llmprovider"
)

// Run executes the ReAct loop: Reason → Act → Observe
func (g *Gateway) Run(ctx context.Context, sc model.Scope, history []model.Message, onDelta func(string)) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: SystemPromptAgent}},
		},
		Messages: toProviderMessages(history),
		Tools:    g.registry.ToFunctionDefinitions(),
	}

	for step := 0; step < MaxAgentSteps; step++ {
		g.l.Infof(ctx, LogMsgAgentStep, step+1, MaxAgentSteps, sc.Username)

		// 1. Reason: Ask LLM what to do
		resp, err := g.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf(ErrMsgAgentLLMError+": %w", step, err)
		}

		if len(resp.Content.Parts) == 0 {
			return "", fmt.Errorf(ErrMsgEmptyLLMResponse)
		}

		var text string
		var calls []*llmprovider.FunctionCall
		for _, part := range resp.Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
			if part.FunctionCall != nil {
				calls = append(calls, part.FunctionCall)
			}
		}

		// 2. Check if LLM wants to call a tool
		if len(calls) == 0 {
			// LLM has final answer
			g.l.Infof(ctx, LogMsgAgentFinished, step+1)
			if onDelta != nil && text != "" {
				onDelta(text)
			}
			return text, nil
		}

		// Stream any interim commentary before acting
		if onDelta != nil && text != "" {
			onDelta(text)
		}

		// 3. Act: Execute the tools, scoped to this turn's user
		req.Messages = append(req.Messages, resp.Content)

		for _, call := range calls {
			g.l.Infof(ctx, LogMsgAgentCallingTool, call.Name, call.Args)

			tool, ok := g.registry.Get(call.Name)
			var toolResult interface{}

			if !ok {
				g.l.Errorf(ctx, "Tool %s not found", call.Name)
				toolResult = map[string]string{"error": ErrMsgToolNotFound}
			} else {
				res, err := tool.Execute(ctx, sc, call.Args)
				if err != nil {
					g.l.Errorf(ctx, LogMsgToolExecutionError, call.Name, err)
					toolResult = map[string]string{"error": err.Error()}
				} else {
					toolResult = res
				}
			}

			// 4. Observe: Add tool result to conversation history
			req.Messages = append(req.Messages, llmprovider.Message{
				Role: "tool",
				Parts: []llmprovider.Part{{
					FunctionResponse: &llmprovider.FunctionResponse{
						Name:     call.Name,
						Response: toolResult,
					},
				}},
			})
		}
	}

	// Max steps exceeded
	g.l.Warnf(ctx, LogMsgAgentMaxSteps, MaxAgentSteps)
	if onDelta != nil {
		onDelta(MsgMaxStepsExceeded)
	}
	return MsgMaxStepsExceeded, nil
}

func toProviderMessages(history []model.Message) []llmprovider.Message {
	messages := make([]llmprovider.Message, 0, len(history))
	for _, msg := range history {
		role := "user"
		switch msg.Role {
		case model.RoleAssistant:
			role = "assistant"
		case model.RoleSystem:
			role = "system"
		}
		messages = append(messages, llmprovider.Message{
			Role:  role,
			Parts: []llmprovider.Part{{Text: msg.Content}},
		})
	}
	return messages
}
