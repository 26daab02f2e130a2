package databricks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected error for missing host, got nil")
	}

	cfg = Config{Host: "https://workspace.cloud.databricks.com"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected error for missing token, got nil")
	}

	cfg = Config{Host: "https://workspace.cloud.databricks.com/", Token: "token"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("Expected default endpoint %s, got: %s", DefaultEndpoint, cfg.Endpoint)
	}
	if cfg.Host != "https://workspace.cloud.databricks.com" {
		t.Errorf("Expected trailing slash trimmed, got: %s", cfg.Host)
	}
	if cfg.HTTPClient == nil {
		t.Error("Expected default HTTP client to be set")
	}
}

func TestGenerateContent(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq openAIRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}

		resp := openAIResponse{
			Choices: []openAIChoice{
				{
					Message: openAIMessage{
						Role:    "assistant",
						Content: "It is normal to feel tired in the first trimester.",
					},
					FinishReason: "stop",
				},
			},
			Usage: openAIUsage{PromptTokens: 20, CompletionTokens: 12, TotalTokens: 32},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client, err := New(Config{Host: ts.URL, Token: "test-token"})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	sys := Content{Role: "system", Parts: []Part{{Text: "You are a helpful assistant."}}}
	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: &sys,
		Messages: []Content{
			{Role: "user", Parts: []Part{{Text: "Why am I so tired?"}}},
		},
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if gotPath != "/serving-endpoints/chat/completions" {
		t.Errorf("Expected serving endpoint path, got: %s", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Expected bearer token header, got: %s", gotAuth)
	}
	if gotReq.Model != DefaultEndpoint {
		t.Errorf("Expected model %s, got: %s", DefaultEndpoint, gotReq.Model)
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("Expected 2 wire messages, got: %d", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" {
		t.Errorf("Expected first message role system, got: %s", gotReq.Messages[0].Role)
	}

	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text == "" {
		t.Fatalf("Expected single text part, got: %+v", resp.Content.Parts)
	}
	if resp.Usage.TotalTokens != 32 {
		t.Errorf("Expected 32 total tokens, got: %d", resp.Usage.TotalTokens)
	}
}

func TestGenerateContent_ToolCalls(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openAIRequest
		json.NewDecoder(r.Body).Decode(&req)

		if len(req.Tools) != 1 || req.Tools[0].Function.Name != "read_plan" {
			t.Errorf("Expected read_plan tool declaration, got: %+v", req.Tools)
		}

		resp := openAIResponse{
			Choices: []openAIChoice{
				{
					Message: openAIMessage{
						Role: "assistant",
						ToolCalls: []openAIToolCall{
							{
								ID:   "call_1",
								Type: "function",
								Function: openAIFunctionCall{
									Name:      "read_plan",
									Arguments: `{"username":"alice"}`,
								},
							},
						},
					},
					FinishReason: "tool_calls",
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	client, err := New(Config{Host: ts.URL, Token: "test-token"})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Content{
			{Role: "user", Parts: []Part{{Text: "Show me my plan"}}},
		},
		Tools: []Tool{
			{
				Name:        "read_plan",
				Description: "Read the current plan",
				Parameters:  map[string]interface{}{"type": "object"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(resp.Content.Parts) != 1 {
		t.Fatalf("Expected 1 part, got: %d", len(resp.Content.Parts))
	}
	fc := resp.Content.Parts[0].FunctionCall
	if fc == nil {
		t.Fatal("Expected a function call part")
	}
	if fc.Name != "read_plan" {
		t.Errorf("Expected function call read_plan, got: %s", fc.Name)
	}
	if fc.Args["username"] != "alice" {
		t.Errorf("Expected username arg alice, got: %v", fc.Args["username"])
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	client, err := New(Config{Host: ts.URL, Token: "bad-token"})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), &Request{
		Messages: []Content{
			{Role: "user", Parts: []Part{{Text: "hello"}}},
		},
	})
	if err == nil {
		t.Fatal("Expected error for 401 response, got nil")
	}
}
