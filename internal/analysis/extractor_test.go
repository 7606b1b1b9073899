package analysis

import "testing"

func TestExtractJSONFencedWithLanguageTag(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"skills\": [\"go\"]}\n```\nHope that helps."
	got := ExtractJSON(raw)
	if got != `{"skills": ["go"]}` {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestExtractJSONBareFence(t *testing.T) {
	raw := "```\n{\"skills\": []}\n```"
	got := ExtractJSON(raw)
	if got != `{"skills": []}` {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestExtractJSONUnterminatedFence(t *testing.T) {
	raw := "```json\n{\"a\": 1}"
	got := ExtractJSON(raw)
	if got != `{"a": 1}` {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestExtractJSONBraceSpanInProse(t *testing.T) {
	raw := `The candidate looks strong. {"score": 8, "note": "good {braces} in strings"} That concludes the analysis.`
	got := ExtractJSON(raw)
	if got != `{"score": 8, "note": "good {braces} in strings"}` {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestExtractJSONNestedObjects(t *testing.T) {
	raw := `prefix {"outer": {"inner": 1}} suffix`
	got := ExtractJSON(raw)
	if got != `{"outer": {"inner": 1}}` {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestExtractJSONPassthrough(t *testing.T) {
	raw := "  \n plain text, no braces at all \n"
	got := ExtractJSON(raw)
	if got != "plain text, no braces at all" {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestExtractJSONBareDocumentUnchanged(t *testing.T) {
	raw := `{"already": "json"}`
	if got := ExtractJSON(raw); got != raw {
		t.Fatalf("bare JSON should pass through, got %q", got)
	}
}

func TestFirstBraceSpanIgnoresEscapedQuotes(t *testing.T) {
	raw := `{"text": "he said \"hi {there}\""}`
	if got := firstBraceSpan(raw); got != raw {
		t.Fatalf("unexpected span: %q", got)
	}
}

func TestFirstBraceSpanUnbalanced(t *testing.T) {
	if got := firstBraceSpan(`{"open": 1`); got != "" {
		t.Fatalf("expected empty span, got %q", got)
	}
}
