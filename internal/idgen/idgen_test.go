package idgen

import (
	"strings"
	"testing"
	"time"
)

func TestNew_Format(t *testing.T) {
	fixed := time.UnixMilli(1756709312456)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	id, err := New("nuts")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !strings.HasPrefix(id, "nuts-1756709312456-") {
		t.Errorf("id = %q, want prefix %q", id, "nuts-1756709312456-")
	}
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("id = %q, want 3 dash-separated parts", id)
	}
	if len(parts[2]) != SuffixLength {
		t.Errorf("suffix length = %d, want %d", len(parts[2]), SuffixLength)
	}
	for _, r := range parts[2] {
		if !strings.ContainsRune(Alphabet, r) {
			t.Errorf("suffix char %q not in alphabet", r)
		}
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := MustNew("leaf")
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}
