package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/prajwalk/mathsprint/internal/achievements"
	"github.com/prajwalk/mathsprint/internal/engine"
)

func testSummary() engine.Summary {
	return engine.Summary{
		Config: engine.Config{
			Operation: engine.OpAddition,
			Digits:    2,
			Mode:      engine.ModeDrill,
			Target:    20,
			Adaptive:  true,
		},
		Questions:  20,
		Correct:    17,
		Accuracy:   0.85,
		AvgTime:    3.2,
		BestStreak: 9,
		Duration:   4 * time.Minute,
		Levels: []engine.LevelChange{
			{Level: 2, AtQuestion: 3},
			{Level: 3, AtQuestion: 8},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), []achievements.Badge{
		{Code: "sniper", Name: "Sniper", Desc: "100% accuracy in a session of 20+ questions"},
	})
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Questions: 20", "Accuracy: 85%", "Best streak: 9", "Sniper", "1 > 2 > 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_HidesLevelsWhenNotAdaptive(t *testing.T) {
	sum := testSummary()
	sum.Config.Adaptive = false
	view := New(sum, nil).View(80, 24)
	if strings.Contains(view, "Difficulty") {
		t.Error("difficulty section shown for non-adaptive session")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}
