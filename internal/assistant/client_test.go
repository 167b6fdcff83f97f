package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/ShayCichocki/relm/pkg/stream"
)

const messageResponse = `{
  "id": "msg_test",
  "type": "message",
  "role": "assistant",
  "model": "claude-sonnet-4-20250514",
  "content": [
    {"type": "text", "text": "Hello, "},
    {"type": "text", "text": "world"}
  ],
  "stop_reason": "end_turn",
  "stop_sequence": null,
  "usage": {"input_tokens": 12, "output_tokens": 3}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), ClientConfig{
		APIKey:  "sk-ant-test-key-123456",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(context.Background(), ClientConfig{APIKey: "sk-ant-test"})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if c.Model() != anthropic.ModelClaudeSonnet4_20250514 {
		t.Errorf("Model = %q, want %q", c.Model(), anthropic.ModelClaudeSonnet4_20250514)
	}
	if c.maxTokens != DefaultMaxTokens {
		t.Errorf("maxTokens = %d, want %d", c.maxTokens, DefaultMaxTokens)
	}
}

func TestNewClient_NoAPIKey(t *testing.T) {
	if _, err := NewClient(context.Background(), ClientConfig{}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestBedrockModel(t *testing.T) {
	tests := []struct {
		in   anthropic.Model
		want anthropic.Model
	}{
		{anthropic.ModelClaudeSonnet4_20250514, "us.anthropic.claude-sonnet-4-20250514-v1:0"},
		{"custom-model", "custom-model"},
	}
	for _, tt := range tests {
		if got := bedrockModel(tt.in); got != tt.want {
			t.Errorf("bedrockModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAsk(t *testing.T) {
	var gotPrompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v1/messages") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Messages []struct {
				Content []struct {
					Text string `json:"text"`
				} `json:"content"`
			} `json:"messages"`
		}
		if err := json.Unmarshal(body, &req); err == nil && len(req.Messages) == 1 && len(req.Messages[0].Content) == 1 {
			gotPrompt = req.Messages[0].Content[0].Text
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, messageResponse)
	})

	answer, err := c.Ask(context.Background(), "  say hello  ")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "Hello, world" {
		t.Errorf("Ask() = %q, want %q", answer, "Hello, world")
	}
	if gotPrompt != "say hello" {
		t.Errorf("server saw prompt %q, want %q", gotPrompt, "say hello")
	}

	in, out := c.Usage().Total()
	if in != 12 || out != 3 || c.Usage().Calls() != 1 {
		t.Errorf("usage = %d/%d over %d calls, want 12/3 over 1", in, out, c.Usage().Calls())
	}
}

func TestAsk_EmptyPrompt(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty prompt")
	})

	if _, err := c.Ask(context.Background(), "   "); !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("Ask() error = %v, want ErrEmptyPrompt", err)
	}
}

func TestAsk_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`)
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), ClientConfig{APIKey: "sk-ant-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := c.Ask(context.Background(), "hi"); err == nil {
		t.Error("expected error from failing server")
	}
	if c.Usage().Calls() != 0 {
		t.Error("failed calls should not be counted")
	}
}

type fakeAsker struct {
	calls int
	reply string
	err   error
}

func (f *fakeAsker) Ask(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.reply + prompt, f.err
}

func TestFuture(t *testing.T) {
	fake := &fakeAsker{reply: "re: "}
	fut := Future(fake, "ping")

	if fake.calls != 0 {
		t.Fatal("Future should not call Ask before it is polled")
	}

	got, err := stream.Collect(context.Background(), fut)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(got) != 1 || got[0] != "re: ping" {
		t.Errorf("Collect() = %v, want [re: ping]", got)
	}
	if fake.calls != 1 {
		t.Errorf("Ask called %d times, want 1", fake.calls)
	}
}
