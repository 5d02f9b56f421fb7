package utils

import "testing"

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("  Jane\tDoe\n\nSenior   Engineer ")
	want := "Jane Doe Senior Engineer"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCollapseWhitespaceIdempotent(t *testing.T) {
	once := CollapseWhitespace("a \n b\t\tc")
	twice := CollapseWhitespace(once)
	if once != twice {
		t.Fatalf("expected idempotent normalization, got %q then %q", once, twice)
	}
}

func TestCollapseWhitespaceEmpty(t *testing.T) {
	if got := CollapseWhitespace(" \n\t "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fences", `{"role":"dev"}`, `{"role":"dev"}`},
		{"plain fences", "```\n{\"role\":\"dev\"}\n```", `{"role":"dev"}`},
		{"json language tag", "```json\n{\"role\":\"dev\"}\n```", `{"role":"dev"}`},
		{"surrounding whitespace", "  ```json\n[1,2]\n```  ", "[1,2]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripFences(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeMode(t *testing.T) {
	if got := NormalizeMode("  System Design "); got != "System Design" {
		t.Fatalf("expected trimmed mode, got %q", got)
	}
}
