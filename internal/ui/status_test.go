package ui

import (
	"slices"
	"testing"
)

func TestStatusLines(t *testing.T) {
	st := Status{Generation: 12, Population: 5, Paused: true}

	got := st.Lines(true, false)
	want := []string{"Generation: 12", "Population: 5", "P A U S E D"}
	if !slices.Equal(got, want) {
		t.Fatalf("status lines = %q, want %q", got, want)
	}

	st.Paused = false
	got = st.Lines(true, true)
	if len(got) != 3+len(controls) || got[2] != "" || got[3] != "Controls:" {
		t.Fatalf("combined lines = %q", got)
	}

	if lines := st.Lines(false, false); len(lines) != 0 {
		t.Fatalf("expected no lines, got %q", lines)
	}
	if lines := st.Lines(false, true); !slices.Equal(lines, controls) {
		t.Fatalf("controls only = %q", lines)
	}
}
