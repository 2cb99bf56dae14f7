package models

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRules(t *testing.T) {
	path := writeRules(t, `rules:
  - prefix: .text
    class: code
  - prefix: .mydata
    class: data
  - prefix: .debug
    class: ignore
`)
	rules, err := LoadRules(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 3 {
		t.Fatalf("got %d rules, want 3", len(rules))
	}
	if rules.Classify(".mydata.tbl") != ClassData {
		t.Fatal(".mydata.tbl should classify as data")
	}
	if rules.Classify(".debug_info") != ClassIgnored {
		t.Fatal(".debug_info should be ignored")
	}
	// a loaded rule set replaces the defaults entirely
	if rules.Classify(".rodata") != ClassOther {
		t.Fatal(".rodata should fall through to other")
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRulesBadClass(t *testing.T) {
	path := writeRules(t, "rules:\n  - prefix: .text\n    class: nonsense\n")
	if _, err := LoadRules(path); err == nil {
		t.Fatal("expected error for unknown class")
	}
}

func TestLoadRulesEmpty(t *testing.T) {
	path := writeRules(t, "rules: []\n")
	if _, err := LoadRules(path); err == nil {
		t.Fatal("expected error for empty rule list")
	}
}

func TestLoadRulesMalformed(t *testing.T) {
	path := writeRules(t, "rules: [unclosed\n")
	if _, err := LoadRules(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
