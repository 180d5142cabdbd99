package errors

import (
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	err := New(ErrorTypeUnknownTag, 2, "SEEDS", "MA=2;SEEDS=0,22",
		"unexpected policy setting '%s'", "SEEDS").
		WithSuggestion("Did you mean 'SEED'?")

	msg := err.Error()

	if !strings.Contains(msg, "[unknown_tag]") {
		t.Errorf("message missing error type: %q", msg)
	}
	if !strings.Contains(msg, "unexpected policy setting 'SEEDS'") {
		t.Errorf("message missing description: %q", msg)
	}
	if !strings.Contains(msg, "clause 2 (SEEDS)") {
		t.Errorf("message missing clause location: %q", msg)
	}
	if !strings.Contains(msg, `"MA=2;SEEDS=0,22"`) {
		t.Errorf("message missing raw policy: %q", msg)
	}
	if !strings.Contains(msg, "Did you mean 'SEED'?") {
		t.Errorf("message missing suggestion: %q", msg)
	}
}

func TestError_Error_NoTag(t *testing.T) {
	err := New(ErrorTypeMalformedClause, 1, "", "MA2",
		"setting 1 must be bisected by exactly one = sign")

	msg := err.Error()

	if !strings.Contains(msg, "clause 1\n") {
		t.Errorf("message missing bare clause location: %q", msg)
	}
	if strings.Contains(msg, "suggestion") {
		t.Errorf("message has a suggestion section without a suggestion: %q", msg)
	}
}
