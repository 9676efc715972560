package utils

import (
	"strings"
	"testing"
)

func TestNewReferenceCode(t *testing.T) {
	code := NewReferenceCode()
	if !strings.HasPrefix(code, "RSV-") {
		t.Fatalf("expected RSV- prefix, got %q", code)
	}
	if len(code) != len("RSV-")+8 {
		t.Fatalf("unexpected code length: %q", code)
	}
	if code != strings.ToUpper(code) {
		t.Fatalf("expected uppercase code, got %q", code)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c := NewReferenceCode()
		if seen[c] {
			t.Fatalf("duplicate reference code generated: %q", c)
		}
		seen[c] = true
	}
}
