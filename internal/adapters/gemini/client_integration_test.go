package gemini

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// TestClient_Generate_Integration runs against the live Gemini API.
// This test is skipped unless RUN_AI_TESTS=true is set.
func TestClient_Generate_Integration(t *testing.T) {
	if os.Getenv("RUN_AI_TESTS") != "true" {
		t.Skip("Skipping AI-dependent test (set RUN_AI_TESTS=true to enable)")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	client, err := NewClient(context.Background(), apiKey, "gemini-2.0-flash", "gemini-1.5-flash", zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	text, err := client.Generate(context.Background(),
		"Recommend exactly one upbeat pop song as 'Title' by Artist, with one sentence about it.")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text == "" {
		t.Error("expected a non-empty response")
	}
	t.Logf("response: %s", text)
}
