package llmprovider

import (
	"context"

	"babygpt/pkg/databricks"
	"babygpt/pkg/openai"
)

// DatabricksAdapter adapts the Databricks client to the Provider interface
type DatabricksAdapter struct {
	client databricks.IDatabricks
}

// NewDatabricksAdapter creates a Provider backed by a Databricks serving endpoint
func NewDatabricksAdapter(client databricks.IDatabricks) *DatabricksAdapter {
	return &DatabricksAdapter{client: client}
}

func (a *DatabricksAdapter) Name() string  { return "databricks" }
func (a *DatabricksAdapter) Model() string { return a.client.Model() }

func (a *DatabricksAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dbReq := &databricks.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		sys := toDatabricksContent(*req.SystemInstruction)
		dbReq.SystemInstruction = &sys
	}
	for _, msg := range req.Messages {
		dbReq.Messages = append(dbReq.Messages, toDatabricksContent(msg))
	}
	for _, tool := range req.Tools {
		dbReq.Tools = append(dbReq.Tools, databricks.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}

	resp, err := a.client.GenerateContent(ctx, dbReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      fromDatabricksContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func toDatabricksContent(msg Message) databricks.Content {
	out := databricks.Content{Role: msg.Role}
	for _, part := range msg.Parts {
		p := databricks.Part{Text: part.Text}
		if part.FunctionCall != nil {
			p.FunctionCall = &databricks.FunctionCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			}
		}
		if part.FunctionResponse != nil {
			p.FunctionResponse = &databricks.FunctionResponse{
				Name:     part.FunctionResponse.Name,
				Response: part.FunctionResponse.Response,
			}
		}
		out.Parts = append(out.Parts, p)
	}
	return out
}

func fromDatabricksContent(msg databricks.Content) Message {
	out := Message{Role: msg.Role}
	for _, part := range msg.Parts {
		p := Part{Text: part.Text}
		if part.FunctionCall != nil {
			p.FunctionCall = &FunctionCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			}
		}
		if part.FunctionResponse != nil {
			p.FunctionResponse = &FunctionResponse{
				Name:     part.FunctionResponse.Name,
				Response: part.FunctionResponse.Response,
			}
		}
		out.Parts = append(out.Parts, p)
	}
	return out
}

// OpenAIAdapter adapts the OpenAI-compatible client to the Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a Provider backed by an OpenAI-compatible endpoint
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

func (a *OpenAIAdapter) Name() string  { return "openai" }
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		sys := toOpenAIContent(*req.SystemInstruction)
		oaReq.SystemInstruction = &sys
	}
	for _, msg := range req.Messages {
		oaReq.Messages = append(oaReq.Messages, toOpenAIContent(msg))
	}
	for _, tool := range req.Tools {
		oaReq.Tools = append(oaReq.Tools, openai.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      fromOpenAIContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func toOpenAIContent(msg Message) openai.Content {
	out := openai.Content{Role: msg.Role}
	for _, part := range msg.Parts {
		p := openai.Part{Text: part.Text}
		if part.FunctionCall != nil {
			p.FunctionCall = &openai.FunctionCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			}
		}
		if part.FunctionResponse != nil {
			p.FunctionResponse = &openai.FunctionResponse{
				Name:     part.FunctionResponse.Name,
				Response: part.FunctionResponse.Response,
			}
		}
		out.Parts = append(out.Parts, p)
	}
	return out
}

func fromOpenAIContent(msg openai.Content) Message {
	out := Message{Role: msg.Role}
	for _, part := range msg.Parts {
		p := Part{Text: part.Text}
		if part.FunctionCall != nil {
			p.FunctionCall = &FunctionCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			}
		}
		if part.FunctionResponse != nil {
			p.FunctionResponse = &FunctionResponse{
				Name:     part.FunctionResponse.Name,
				Response: part.FunctionResponse.Response,
			}
		}
		out.Parts = append(out.Parts, p)
	}
	return out
}
