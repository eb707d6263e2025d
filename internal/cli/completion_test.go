package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _gradebook_completions gradebook", "--log-level)", "--theme)", "--serve", "-V"}},
		{"zsh", []string{"#compdef gradebook", "'--demo[Pre-populate with sample students]'", ":shell:(bash zsh fish)"}},
		{"fish", []string{"complete -c gradebook -f", "complete -c gradebook -l tui", "-s h -l help"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error: %v", tt.shell, err)
			}
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("%s completion missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "powershell"); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unsupported shell")
	}
}

func TestFlagRegistry_EveryFlagCompletes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "bash"); err != nil {
		t.Fatal(err)
	}
	for _, f := range flagRegistry {
		if !strings.Contains(buf.String(), "--"+f.Long) {
			t.Errorf("bash completion missing --%s", f.Long)
		}
	}
}
