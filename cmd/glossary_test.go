package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGlossaryMarkdown(t *testing.T) {
	md := glossaryMarkdown()
	for _, want := range []string{"# Glossary", "**Synodic month**: The average period between successive new moons, about 29.53 days.", "| Waxing Gibbous | 0.28 to 0.47 |"} {
		if !strings.Contains(md, want) {
			t.Errorf("glossary markdown should contain %q, got:\n%s", want, md)
		}
	}
	if got := strings.Count(md, "\n| "); got != len(phaseRanges)+1 {
		t.Errorf("phase table has %d rows, want %d", got, len(phaseRanges)+1)
	}
}

func TestGlossaryRendered(t *testing.T) {
	setupTestEnv(t, testNow)
	out, _, err := runMoon(t, "glossary")
	if err != nil {
		t.Fatalf("glossary returned error: %v", err)
	}
	for _, want := range []string{"Glossary", "Synodic month", "Waning Crescent"} {
		if !strings.Contains(out, want) {
			t.Errorf("glossary output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestGlossaryJSON(t *testing.T) {
	setupTestEnv(t, testNow)
	out, _, err := runMoon(t, "glossary", "-o", "json")
	if err != nil {
		t.Fatalf("glossary -o json returned error: %v", err)
	}
	var entries []glossaryEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(entries) != len(glossary) {
		t.Errorf("got %d entries, want %d", len(entries), len(glossary))
	}
}
