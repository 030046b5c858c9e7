package summary

import (
	"strings"
	"testing"

	"github.com/ermek/bilim/internal/results"
)

func TestEncouragementBands(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{100, "Awesome! You're a star! 🌟"},
		{80, "Awesome! You're a star! 🌟"},
		{79, "Great job! Keep it up!"},
		{60, "Great job! Keep it up!"},
		{59, "Good effort! Practice makes perfect."},
		{40, "Good effort! Practice makes perfect."},
		{39, "Keep trying, you'll get there!"},
		{0, "Keep trying, you'll get there!"},
	}

	for _, tt := range tests {
		if got := Encouragement(tt.percentage); got != tt.want {
			t.Errorf("Encouragement(%d) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestViewShowsSaveFailure(t *testing.T) {
	result := results.ExerciseResult{
		Subject:        "Math",
		Topic:          "Addition",
		Difficulty:     "Easy",
		Score:          4,
		TotalQuestions: 5,
		Percentage:     80,
	}

	clean := New(result, nil, nil)
	if strings.Contains(clean.View(80, 24), "Couldn't save") {
		t.Error("save warning shown for a successful save")
	}

	failed := New(result, errTest{}, nil)
	if !strings.Contains(failed.View(80, 24), "Couldn't save") {
		t.Error("expected save warning after a failed save")
	}
}

type errTest struct{}

func (errTest) Error() string { return "disk full" }
