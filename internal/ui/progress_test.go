package ui

import (
	"errors"
	"strings"
	"testing"

	"ronfmt/internal/driver"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.ron", 20, "short.ron"},
		{"very/long/path/file.ron", 10, "very..."},
		{"abcdef", 3, "abc"},
		{"日本語.ron", 8, "日..."},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestApplyEvent(t *testing.T) {
	m := NewProgressModel("fmt", []string{"a.ron", "b.ron"}, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.ron", Stage: driver.StageParse, Status: driver.StatusWorking})
	if m.items[0].status != "parsing" {
		t.Fatalf("status = %q", m.items[0].status)
	}
	if got := m.percent(); got != 0.15 {
		t.Fatalf("percent = %v", got)
	}

	m.applyEvent(driver.Event{File: "a.ron", Stage: driver.StageWrite, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.ron", Stage: driver.StageRead, Status: driver.StatusError, Err: errors.New("boom")})
	m.applyEvent(driver.Event{File: "unknown.ron", Stage: driver.StageRead, Status: driver.StatusWorking})

	finished, failed := m.counts()
	if finished != 2 || failed != 1 {
		t.Fatalf("finished = %d, failed = %d", finished, failed)
	}
	if m.percent() != 1.0 {
		t.Fatalf("percent = %v", m.percent())
	}

	view := m.View()
	for _, want := range []string{"fmt (2/2), 1 failed", "done", "error", "a.ron", "b.ron"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEventsClosedQuits(t *testing.T) {
	ch := make(chan driver.Event)
	close(ch)
	m := NewProgressModel("fmt", nil, ch).(*progressModel)
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatal("closed channel must produce doneMsg")
	}
	if m.View() != "" {
		t.Fatal("empty model renders nothing")
	}
}
