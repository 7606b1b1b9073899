package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"resume-analyzer/internal/llm"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(context.Background(), "", "gemini-1.5-flash"); err == nil {
		t.Fatalf("expected error for missing api key")
	}
}

func TestNewClientRequiresModel(t *testing.T) {
	if _, err := NewClient(context.Background(), "key", "  "); err == nil {
		t.Fatalf("expected error for missing model")
	}
}

func TestTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("hello "), genai.Text("world")},
				},
			},
		},
	}
	text, err := textFromResponse(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextFromResponseEmpty(t *testing.T) {
	cases := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"no content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"whitespace only", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("  \n")}}},
			},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := textFromResponse(tc.resp); !errors.Is(err, llm.ErrEmptyReply) {
				t.Fatalf("expected ErrEmptyReply, got %v", err)
			}
		})
	}
}
