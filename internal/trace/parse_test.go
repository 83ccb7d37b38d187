package trace

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtractJSON_Direct(t *testing.T) {
	res, err := ExtractJSON(`  {"stimulus":"heat","steps":[]}  `)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if res.Stimulus() != "heat" {
		t.Fatalf("stimulus = %q, want heat", res.Stimulus())
	}
}

func TestExtractJSON_Fenced(t *testing.T) {
	for _, raw := range []string{
		"```json\n{\"stimulus\":\"light\"}\n```",
		"```\n{\"stimulus\":\"light\"}\n```",
		"Here you go:\n```json\n{\"stimulus\":\"light\"}\n```\nHope that helps.",
	} {
		res, err := ExtractJSON(raw)
		if err != nil {
			t.Fatalf("parse error for %q: %v", raw, err)
		}
		if res.Stimulus() != "light" {
			t.Fatalf("stimulus = %q, want light", res.Stimulus())
		}
	}
}

func TestExtractJSON_FencedEqualsDirect(t *testing.T) {
	direct, err := ExtractJSON(`{"stimulus":"sound","steps":[{"step_number":1}]}`)
	if err != nil {
		t.Fatalf("direct parse error: %v", err)
	}
	fenced, err := ExtractJSON("```json\n{\"stimulus\":\"sound\",\"steps\":[{\"step_number\":1}]}\n```")
	if err != nil {
		t.Fatalf("fenced parse error: %v", err)
	}
	if !reflect.DeepEqual(direct, fenced) {
		t.Fatalf("fenced result differs from direct: %v vs %v", fenced, direct)
	}
}

func TestExtractJSON_FirstFenceWins(t *testing.T) {
	raw := "```json\n{\"stimulus\":\"first\"}\n```\n```json\n{\"stimulus\":\"second\"}\n```"
	res, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if res.Stimulus() != "first" {
		t.Fatalf("stimulus = %q, want first", res.Stimulus())
	}
}

func TestExtractJSON_Garbage(t *testing.T) {
	_, err := ExtractJSON("the model rambled instead of returning data")
	if err == nil {
		t.Fatal("expected error")
	}
	var pErr *ParseError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if pErr.Error() != "could not parse structured data from model response" {
		t.Fatalf("unexpected message: %q", pErr.Error())
	}
}

func TestExtractJSON_MalformedFenceFailsHard(t *testing.T) {
	_, err := ExtractJSON("```json\n{not valid json\n```")
	var pErr *ParseError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
