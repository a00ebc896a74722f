package assist

import "testing"

type promptPayload struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

func TestDecodeLooseBareJSON(t *testing.T) {
	var p promptPayload
	if err := decodeLoose(`{"text":"What made you smile?","type":"reflection"}`, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Text != "What made you smile?" || p.Type != "reflection" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestDecodeLooseFencedBlock(t *testing.T) {
	text := "Here you go:\n```json\n{\"text\": \"Describe a color.\", \"type\": \"creative\"}\n```\nEnjoy!"
	var p promptPayload
	if err := decodeLoose(text, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Type != "creative" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestDecodeLooseBareFence(t *testing.T) {
	text := "```\n{\"text\": \"Recall a sound from childhood.\", \"type\": \"memory\"}\n```"
	var p promptPayload
	if err := decodeLoose(text, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Type != "memory" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestDecodeLooseBraceScan(t *testing.T) {
	text := `Sure! The result is {"text": "Write about rain.", "type": "creative"} as requested.`
	var p promptPayload
	if err := decodeLoose(text, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Text != "Write about rain." {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestDecodeLooseUnparseable(t *testing.T) {
	var p promptPayload
	if err := decodeLoose("I cannot help with that.", &p); err == nil {
		t.Fatal("expected an error for prose with no JSON")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 50); got != "short" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := truncate("今天去了海边，心情很好", 5); got != "今天去了海..." {
		t.Fatalf("expected rune-safe cut, got %q", got)
	}
}
