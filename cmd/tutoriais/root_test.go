package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abelbrown/tutoriais/internal/brain"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{
		"API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY",
		"TUTORIAIS_CATALOG", "LOG_LEVEL", "TUTORIAIS_LOG_LEVEL",
	} {
		t.Setenv(name, "")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateEnv(t)
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListAll(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, want := range []string{"All Content (6 Results)", "Mastering React Hooks", "Advanced TypeScript Patterns"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListFilters(t *testing.T) {
	out, err := run(t, "list", "--category", "dev", "--type", "video")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "Category: Dev (1 Result)") {
		t.Errorf("heading missing:\n%s", out)
	}
	if !strings.Contains(out, "Introduction to Python for Data Science") {
		t.Errorf("video item missing:\n%s", out)
	}
	if strings.Contains(out, "Mastering React Hooks") {
		t.Errorf("article should be filtered out:\n%s", out)
	}
}

func TestListNoMatch(t *testing.T) {
	out, err := run(t, "list", "-q", "zzz")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "0 Results") || !strings.Contains(out, "No tutorials match these filters.") {
		t.Errorf("empty listing not reported:\n%s", out)
	}
}

func TestListCounts(t *testing.T) {
	out, err := run(t, "list", "--counts")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "LIVE") || !strings.Contains(out, "Development") {
		t.Errorf("category table missing:\n%s", out)
	}
}

func TestShowRaw(t *testing.T) {
	out, err := run(t, "show", "4", "--raw")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	for _, want := range []string{"Company Handbook 2024", "AI SUMMARY", "Document preview not available for this item."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowSummaryWithoutCredentialUsesExcerpt(t *testing.T) {
	out, err := run(t, "show", "1", "--raw", "--summary")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	if !strings.Contains(out, "A comprehensive guide to using useState") {
		t.Errorf("excerpt should stand in for the summary:\n%s", out)
	}
	if !strings.Contains(out, "Related Content") {
		t.Errorf("related list missing:\n%s", out)
	}
}

func TestShowUnknown(t *testing.T) {
	_, err := run(t, "show", "999")
	if err == nil || !strings.Contains(err.Error(), "tutorial not found") {
		t.Errorf("show 999 error = %v, want not found", err)
	}
}

func TestAskWithoutCredential(t *testing.T) {
	out, err := run(t, "ask", "1", "what", "is", "a", "hook?")
	if err != nil {
		t.Fatalf("ask error = %v", err)
	}
	if strings.TrimSpace(out) != brain.AnswerNoCredential {
		t.Errorf("ask output = %q, want %q", out, brain.AnswerNoCredential)
	}
}

func TestCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `categories:
  - id: all
    name: All Content
    count: 1
tutorials:
  - id: "a1"
    title: Only Item
    excerpt: The only one.
    content: Body.
    type: ARTICLE
    tags: [misc]
    author: Tester
    date: "2024-01-01"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "list", "--catalog", path)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "1 Result") || !strings.Contains(out, "Only Item") {
		t.Errorf("custom catalog not used:\n%s", out)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "list", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("an explicit missing config file should fail")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "tutoriais version ") {
		t.Errorf("version output = %q", out)
	}
}
