package exercise

import (
	"math/rand"
	"testing"

	"github.com/ermek/bilim/internal/wordbank"
)

func testItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{
			Prompt:  "q",
			Options: []string{"right", "wrong-1", "wrong-2", "wrong-3"},
			Answer:  "right",
		})
	}
	return items
}

func testSession(n int) *Session {
	return NewSession("u1", "Math", "Addition", "Easy", testItems(n), MathTimerSecs)
}

func TestSession_CorrectAnswerIncrementsScore(t *testing.T) {
	s := testSession(2)

	if !s.Submit("right") {
		t.Fatal("expected correct evaluation")
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
	if s.Phase != PhaseEvaluated {
		t.Errorf("phase = %v, want PhaseEvaluated", s.Phase)
	}
}

func TestSession_WrongAnswerKeepsScore(t *testing.T) {
	s := testSession(2)

	if s.Submit("wrong-1") {
		t.Fatal("expected incorrect evaluation")
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
}

func TestSession_SubmitAfterEvaluatedIsNoOp(t *testing.T) {
	s := testSession(2)
	s.Submit("wrong-1")

	// A second selection, e.g. racing a timer event, must change nothing.
	s.Submit("right")
	if s.Score != 0 {
		t.Errorf("score = %d, want 0 after racing submit", s.Score)
	}
	if s.Selected != "wrong-1" {
		t.Errorf("selected = %q, want original selection kept", s.Selected)
	}
}

func TestSession_AdvanceResetsTransientState(t *testing.T) {
	s := testSession(3)
	s.Tick(0)
	s.Submit("right")
	s.Advance()

	if s.Current != 1 {
		t.Errorf("current = %d, want 1", s.Current)
	}
	if s.Phase != PhaseAwaitingAnswer {
		t.Errorf("phase = %v, want PhaseAwaitingAnswer", s.Phase)
	}
	if s.Selected != "" || s.TimedOut {
		t.Error("per-question state not reset")
	}
	if s.TimeLeft != MathTimerSecs {
		t.Errorf("time left = %d, want %d", s.TimeLeft, MathTimerSecs)
	}
	if s.Seq != 1 {
		t.Errorf("seq = %d, want 1", s.Seq)
	}
}

func TestSession_LastAdvanceCompletes(t *testing.T) {
	s := testSession(2)

	s.Submit("right")
	s.Advance()
	s.Submit("wrong-1")
	s.Advance()

	if !s.Completed() {
		t.Fatal("expected completed session")
	}
	if s.CurrentQuestion() == nil {
		// Completed keeps Current at the last index; the question is
		// still addressable for the summary.
		t.Error("expected last question to remain addressable")
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
}

func TestSession_TimeoutCountsAsIncorrect(t *testing.T) {
	s := testSession(1)

	var expired bool
	for i := 0; i < MathTimerSecs; i++ {
		expired = s.Tick(0)
	}
	if !expired {
		t.Fatal("expected expiry after 30 ticks")
	}
	if s.Phase != PhaseEvaluated || !s.TimedOut || s.Selected != "" {
		t.Errorf("timeout not evaluated as unselected incorrect: %+v", s)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}

	// Selecting after expiry is rejected.
	if s.Submit("right") {
		t.Error("submit after timeout must be a no-op")
	}
}

func TestSession_StaleTickIgnored(t *testing.T) {
	s := testSession(2)
	s.Submit("right")
	s.Advance()

	// A tick scheduled for question 0 arrives after the advance.
	if s.Tick(0) {
		t.Fatal("stale tick must not expire the new question")
	}
	if s.TimeLeft != MathTimerSecs {
		t.Errorf("stale tick consumed time: %d", s.TimeLeft)
	}

	if s.Tick(s.Seq) {
		t.Fatal("fresh tick should not expire immediately")
	}
	if s.TimeLeft != MathTimerSecs-1 {
		t.Errorf("fresh tick not applied: %d", s.TimeLeft)
	}
}

func TestSession_UntimedNeverTicks(t *testing.T) {
	s := NewSession("u1", "Vocabulary", "quiz", "beginner", testItems(1), 0)
	if s.TimerRunning() {
		t.Fatal("untimed session must not run a timer")
	}
	if s.Tick(0) {
		t.Fatal("tick on untimed session must be ignored")
	}
}

func TestFlashcardRun(t *testing.T) {
	words := []wordbank.Word{
		{ID: "1", Word: "apple", Translation: "яблоко"},
		{ID: "2", Word: "house", Translation: "дом"},
		{ID: "3", Word: "water", Translation: "вода"},
	}
	run := NewFlashcardRun(words)

	run.Flip()
	if !run.Revealed {
		t.Error("flip did not reveal")
	}

	run.Mark(true)
	if run.Score != 1 || run.Current != 1 || run.Revealed {
		t.Errorf("unexpected state after known card: %+v", run)
	}

	run.Mark(false)
	run.Mark(true)
	if !run.Done {
		t.Fatal("expected run to complete after last card")
	}
	if run.Score != 2 {
		t.Errorf("score = %d, want 2", run.Score)
	}

	// Marking after completion changes nothing.
	run.Mark(true)
	if run.Score != 2 {
		t.Errorf("score after done = %d, want 2", run.Score)
	}
}

func TestMatchingBoard(t *testing.T) {
	pairs := []wordbank.Pair{
		{Word: "apple", Translation: "яблоко"},
		{Word: "house", Translation: "дом"},
		{Word: "water", Translation: "вода"},
	}
	board := NewMatchingBoard(pairs, rand.New(rand.NewSource(1)))

	if board.Completed() {
		t.Fatal("fresh board must not be complete")
	}

	// Word then matching translation.
	if evaluated, _ := board.SelectWord("apple"); evaluated {
		t.Fatal("single selection must not evaluate")
	}
	evaluated, matched := board.SelectTranslation("яблоко")
	if !evaluated || !matched {
		t.Fatalf("expected match, got evaluated=%v matched=%v", evaluated, matched)
	}
	if board.Score != 1 {
		t.Errorf("score = %d, want 1", board.Score)
	}

	// Mismatched pair clears the selection without scoring.
	board.SelectTranslation("дом")
	evaluated, matched = board.SelectWord("water")
	if !evaluated || matched {
		t.Fatalf("expected evaluated mismatch, got evaluated=%v matched=%v", evaluated, matched)
	}
	if board.Score != 1 {
		t.Errorf("score = %d, want 1 after mismatch", board.Score)
	}
	if board.SelectedWord != "" || board.SelectedTranslation != "" {
		t.Error("selection not cleared after evaluation")
	}

	// Second match leaves one pair: board treats that as complete.
	board.SelectWord("house")
	board.SelectTranslation("дом")
	if !board.Completed() {
		t.Fatal("expected completion with one pair remaining")
	}
	if len(board.UnmatchedWords()) != 1 {
		t.Errorf("unmatched words = %v, want one left", board.UnmatchedWords())
	}
}

func TestMatchingBoard_ToggleDeselects(t *testing.T) {
	pairs := []wordbank.Pair{
		{Word: "a", Translation: "x"},
		{Word: "b", Translation: "y"},
	}
	board := NewMatchingBoard(pairs, rand.New(rand.NewSource(1)))

	board.SelectWord("a")
	board.SelectWord("a")
	if board.SelectedWord != "" {
		t.Error("re-selecting a word must deselect it")
	}
}
