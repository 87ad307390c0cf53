package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{MinWidth, MinHeight, false},
		{MinWidth - 1, 24, true},
		{80, MinHeight - 1, true},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestTail(t *testing.T) {
	s := "a\nb\nc\nd"
	if got := Tail(s, 2); got != "c\nd" {
		t.Errorf("Tail(2) = %q", got)
	}
	if got := Tail(s, 10); got != s {
		t.Errorf("Tail(10) = %q", got)
	}
	if got := Tail(s, 0); got != "" {
		t.Errorf("Tail(0) = %q", got)
	}
}

func TestWrapKeepsWidth(t *testing.T) {
	out := Wrap(strings.Repeat("word ", 40), 20)
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Errorf("line wider than 20: %d %q", w, line)
		}
	}
	if got := Wrap("unchanged", 0); got != "unchanged" {
		t.Errorf("Wrap(0) = %q", got)
	}
}

func TestRenderFrameFitsHeight(t *testing.T) {
	header := RenderHeader("Chat", "2 docs", 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Send"}}, 80)
	content := strings.Repeat("line\n", 100)

	frame := RenderFrame(header, content, footer, 80, 24)
	if h := lipgloss.Height(frame); h != 24 {
		t.Errorf("frame height = %d, want 24", h)
	}
	if !strings.Contains(header, "studybuddy") || !strings.Contains(header, "2 docs") {
		t.Errorf("header = %q", header)
	}
}
