package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempPolicySet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policies.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLintPolicyFileClean(t *testing.T) {
	path := writeTempPolicySet(t, `local: true
policies:
  - name: sensitive-local
    policy: "MIN=0,0.8;SEED=0,20"
  - name: defaults
    policy: ""
`)

	results := lintPolicyFile(path)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if !r.Valid {
			t.Errorf("policy %q invalid: %+v", r.Name, r.Errors)
		}
		if len(r.Errors) != 0 {
			t.Errorf("policy %q has errors: %+v", r.Name, r.Errors)
		}
	}
	if results[0].Name != "sensitive-local" || results[1].Name != "defaults" {
		t.Errorf("names = %q, %q", results[0].Name, results[1].Name)
	}
}

func TestLintPolicyFileParseError(t *testing.T) {
	path := writeTempPolicySet(t, `policies:
  - name: broken
    policy: "MA=4;SEEED=1"
`)

	results := lintPolicyFile(path)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if r.Valid {
		t.Error("result marked valid, want invalid")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(r.Errors))
	}

	issue := r.Errors[0]
	if issue.Type != "unknown_tag" {
		t.Errorf("Type = %q, want %q", issue.Type, "unknown_tag")
	}
	if issue.Clause != 2 {
		t.Errorf("Clause = %d, want 2", issue.Clause)
	}
	if issue.Tag != "SEEED" {
		t.Errorf("Tag = %q, want %q", issue.Tag, "SEEED")
	}
	if !strings.Contains(issue.Suggestion, "SEED") {
		t.Errorf("Suggestion = %q, want mention of SEED", issue.Suggestion)
	}
}

func TestLintPolicyFileSemanticIssues(t *testing.T) {
	path := writeTempPolicySet(t, `policies:
  - name: too-many-mismatches
    policy: "SEED=7"
`)

	results := lintPolicyFile(path)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if r.Valid {
		t.Error("result marked valid, want invalid")
	}
	if len(r.Errors) == 0 {
		t.Fatal("no semantic errors reported")
	}
	if r.Errors[0].Field != "seed.mismatches" {
		t.Errorf("Field = %q, want %q", r.Errors[0].Field, "seed.mismatches")
	}
}

func TestLintPolicyFileUnreadable(t *testing.T) {
	results := lintPolicyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Valid {
		t.Error("result marked valid for missing file")
	}
	if len(results[0].Errors) != 1 {
		t.Errorf("got %d errors, want 1", len(results[0].Errors))
	}
}

func TestFailed(t *testing.T) {
	clean := []LintResult{{Valid: true}}
	withErr := []LintResult{{Errors: []LintIssue{{Message: "boom"}}}}
	withWarn := []LintResult{{Valid: true, Warnings: []LintIssue{{Message: "hmm"}}}}

	if failed(clean, false) {
		t.Error("failed(clean) = true")
	}
	if !failed(withErr, false) {
		t.Error("failed(withErr) = false")
	}
	if failed(withWarn, false) {
		t.Error("failed(withWarn, strict=false) = true")
	}
	if !failed(withWarn, true) {
		t.Error("failed(withWarn, strict=true) = false")
	}
}

func TestWriteLintText(t *testing.T) {
	results := []LintResult{
		{
			File:  "a.yaml",
			Name:  "good",
			Valid: true,
		},
		{
			File: "a.yaml",
			Name: "bad",
			Errors: []LintIssue{{
				Clause:     1,
				Tag:        "MMQ",
				Message:    "unknown policy tag 'MMQ'",
				Severity:   "error",
				Type:       "unknown_tag",
				Suggestion: "Did you mean 'MMP'?",
			}},
			Warnings: []LintIssue{{
				Field:    "row_mult",
				Message:  "row multiplier below 1 shrinks the row budget",
				Severity: "warning",
			}},
		},
	}

	var buf strings.Builder
	writeLintText(&buf, results, true)
	out := buf.String()

	for _, want := range []string{
		"Validating good (a.yaml)",
		"policy resolves cleanly",
		"unknown policy tag 'MMQ'",
		"(clause 1, MMQ)",
		"[unknown_tag]",
		"= suggestion: Did you mean 'MMP'?",
		"[row_mult]",
		"1 error(s), 1 warning(s)",
		"Strict mode enabled",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}
