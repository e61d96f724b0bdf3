package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	err := RenderMarkdown(&buf, "Waxing **gibbous**", 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Waxing") || !strings.Contains(out, "gibbous") {
		t.Errorf("expected rendered markdown to contain 'Waxing' and 'gibbous', got: %s", out)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := RenderMarkdown(&buf, "", 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty content, got: %q", buf.String())
	}
}

func TestRenderMarkdownPreservesContent(t *testing.T) {
	input := `# Glossary

The **synodic month** is the *average* period between new moons.

- New Moon
- Full Moon
- Last Quarter

` + "```\nmoon phase 2000-01-21\n```"

	var buf bytes.Buffer
	err := RenderMarkdown(&buf, input, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, expected := range []string{"Glossary", "synodic month", "average", "New Moon", "Full Moon", "Last Quarter", "moon phase 2000-01-21"} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %q, got:\n%s", expected, out)
		}
	}
}

func TestRenderMarkdownZeroWidth(t *testing.T) {
	var buf bytes.Buffer
	err := RenderMarkdown(&buf, "Illumination peaks at full moon", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Illumination peaks at full moon") {
		t.Errorf("expected output to contain the text, got: %s", buf.String())
	}
}
