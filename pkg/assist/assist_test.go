package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableflip.dev/lumiere/pkg/i18n"
	"tableflip.dev/lumiere/pkg/mood"
)

func googleServer(t *testing.T, reply string, capture *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") == "" {
			http.Error(w, "missing key", http.StatusUnauthorized)
			return
		}
		if capture != nil {
			var body map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode request: %v", err)
			}
			*capture = body
		}
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, reply)
	}))
}

func customServer(t *testing.T, reply string, capture *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if capture != nil {
			var body map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode request: %v", err)
			}
			*capture = body
		}
		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%q}}]}`, reply)
	}))
}

func TestGeneratePromptGoogle(t *testing.T) {
	var captured map[string]interface{}
	srv := googleServer(t, `{"text":"What surprised you today?","type":"memory"}`, &captured)
	defer srv.Close()

	c := &Client{GoogleBaseURL: srv.URL}
	cfg := Config{Provider: ProviderGoogle, APIKey: "key", Model: "gemini-test"}

	got, err := c.GeneratePrompt(context.Background(), "evening", i18n.English, cfg)
	if err != nil {
		t.Fatalf("generate prompt: %v", err)
	}
	if got.Text != "What surprised you today?" || got.Type != Memory {
		t.Fatalf("unexpected suggestion: %+v", got)
	}

	gc, ok := captured["generationConfig"].(map[string]interface{})
	if !ok || gc["responseMimeType"] != "application/json" {
		t.Fatalf("expected structured-output generation config, got %v", captured["generationConfig"])
	}
	if gc["responseSchema"] == nil {
		t.Fatal("expected a response schema for prompt generation")
	}
}

func TestGeneratePromptCustom(t *testing.T) {
	var captured map[string]interface{}
	srv := customServer(t, `{"text":"Describe your morning.","type":"reflection"}`, &captured)
	defer srv.Close()

	c := New()
	cfg := Config{Provider: ProviderCustom, APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "llama3"}

	got, err := c.GeneratePrompt(context.Background(), "morning", i18n.English, cfg)
	if err != nil {
		t.Fatalf("generate prompt: %v", err)
	}
	if got.Text != "Describe your morning." || got.Type != Reflection {
		t.Fatalf("unexpected suggestion: %+v", got)
	}

	msgs, ok := captured["messages"].([]interface{})
	if !ok || len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %v", captured["messages"])
	}
	system := msgs[0].(map[string]interface{})
	if !strings.Contains(system["content"].(string), "valid JSON only") {
		t.Fatalf("system message missing JSON directive: %v", system["content"])
	}
	if captured["model"] != "llama3" {
		t.Fatalf("expected configured model, got %v", captured["model"])
	}
}

func TestGeneratePromptFallbackWithoutKey(t *testing.T) {
	c := New()
	got, err := c.GeneratePrompt(context.Background(), "morning", i18n.Chinese, Config{Provider: ProviderGoogle})
	if err == nil {
		t.Fatal("expected an error without an API key")
	}
	if got.Text != "今天有什么值得记录的事吗？" || got.Type != Reflection {
		t.Fatalf("expected canned zh fallback, got %+v", got)
	}
}

func TestGeneratePromptFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &Client{GoogleBaseURL: srv.URL}
	got, err := c.GeneratePrompt(context.Background(), "afternoon", i18n.English, Config{Provider: ProviderGoogle, APIKey: "key"})
	if err == nil {
		t.Fatal("expected an error from a failing provider")
	}
	if got.Text != "What is something worth remembering today?" {
		t.Fatalf("expected canned en fallback, got %+v", got)
	}
}

func TestAnalyzeEntryGoogle(t *testing.T) {
	var captured map[string]interface{}
	srv := googleServer(t, `{"title":"Lakeside Quiet","mood":"calm","tags":["nature","walk","water"],"summary":"A peaceful walk by the lake."}`, &captured)
	defer srv.Close()

	c := &Client{GoogleBaseURL: srv.URL}
	cfg := Config{Provider: ProviderGoogle, APIKey: "key"}

	got, err := c.AnalyzeEntry(context.Background(), "Walked by the lake this afternoon.", i18n.English, cfg)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.Title != "Lakeside Quiet" || got.Mood != mood.Calm || len(got.Tags) != 3 {
		t.Fatalf("unexpected analysis: %+v", got)
	}
}

func TestAnalyzeEntryUnknownMoodCollapsesToNeutral(t *testing.T) {
	srv := googleServer(t, `{"title":"A Day","mood":"ecstatic","tags":["journal"],"summary":"s"}`, nil)
	defer srv.Close()

	c := &Client{GoogleBaseURL: srv.URL}
	got, err := c.AnalyzeEntry(context.Background(), "text", i18n.English, Config{APIKey: "key"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.Mood != mood.Neutral {
		t.Fatalf("expected unknown mood to collapse to neutral, got %v", got.Mood)
	}
}

func TestAnalyzeEntryTruncatesLongInput(t *testing.T) {
	var captured map[string]interface{}
	srv := googleServer(t, `{"title":"Long","mood":"neutral","tags":["journal"],"summary":"s"}`, &captured)
	defer srv.Close()

	c := &Client{GoogleBaseURL: srv.URL}
	long := strings.Repeat("a", 3000)
	if _, err := c.AnalyzeEntry(context.Background(), long, i18n.English, Config{APIKey: "key"}); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	contents := captured["contents"].([]interface{})
	parts := contents[0].(map[string]interface{})["parts"].([]interface{})
	prompt := parts[0].(map[string]interface{})["text"].(string)
	if strings.Contains(prompt, strings.Repeat("a", 1001)) {
		t.Fatal("entry text must be truncated before sending")
	}
	if !strings.Contains(prompt, strings.Repeat("a", 1000)+"...") {
		t.Fatal("truncated text should carry an ellipsis marker")
	}
}

func TestAnalyzeEntryFallbackPreviewsContent(t *testing.T) {
	c := New()
	text := strings.Repeat("x", 80)
	got, err := c.AnalyzeEntry(context.Background(), text, i18n.English, Config{})
	if err == nil {
		t.Fatal("expected an error without an API key")
	}
	if got.Title != "Untitled Entry" || got.Mood != mood.Neutral {
		t.Fatalf("expected canned fallback, got %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "journal" {
		t.Fatalf("expected fallback tag, got %v", got.Tags)
	}
	if got.Summary != strings.Repeat("x", 50)+"..." {
		t.Fatalf("expected 50-char preview summary, got %q", got.Summary)
	}
}

func TestTestConnectionCustom(t *testing.T) {
	var captured map[string]interface{}
	srv := customServer(t, "OK", &captured)
	defer srv.Close()

	c := New()
	cfg := Config{Provider: ProviderCustom, APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "llama3"}
	if err := c.TestConnection(context.Background(), cfg); err != nil {
		t.Fatalf("test connection: %v", err)
	}
	if captured["max_tokens"] != float64(5) {
		t.Fatalf("expected a minimal max_tokens ping, got %v", captured["max_tokens"])
	}
}

func TestTestConnectionPropagatesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := &Client{GoogleBaseURL: srv.URL}
	if err := c.TestConnection(context.Background(), Config{Provider: ProviderGoogle, APIKey: "bad"}); err == nil {
		t.Fatal("expected the connection test to surface the failure")
	}
}

func TestConfigJSONShape(t *testing.T) {
	cfg := Config{Provider: ProviderCustom, APIKey: "k", BaseURL: "http://localhost:1234/v1", Model: "llama3"}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"provider":"custom","apiKey":"k","baseUrl":"http://localhost:1234/v1","modelName":"llama3"}`
	if string(data) != want {
		t.Fatalf("unexpected shape:\n  got  %s\n  want %s", data, want)
	}

	var back Config
	if err := json.Unmarshal([]byte(`{"provider":"whatever","apiKey":"k","modelName":""}`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Provider != ProviderGoogle {
		t.Fatal("unknown provider must collapse to google")
	}
	if back.ModelOrDefault() != "gemini-3-flash-preview" {
		t.Fatalf("expected default model, got %q", back.ModelOrDefault())
	}
}
