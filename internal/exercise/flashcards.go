package exercise

import "github.com/ermek/bilim/internal/wordbank"

// FlashcardRun walks a word set one card at a time. Evaluation is a
// self-report ("knew it" / "didn't know") instead of an answer check;
// the state shape otherwise matches Session.
type FlashcardRun struct {
	Words    []wordbank.Word
	Current  int
	Score    int
	Revealed bool
	Done     bool
}

// NewFlashcardRun starts a run over words.
func NewFlashcardRun(words []wordbank.Word) *FlashcardRun {
	return &FlashcardRun{Words: words}
}

// CurrentWord returns the active card, or nil when the run is done.
func (f *FlashcardRun) CurrentWord() *wordbank.Word {
	if f.Done || f.Current >= len(f.Words) {
		return nil
	}
	return &f.Words[f.Current]
}

// Flip toggles the translation side of the card.
func (f *FlashcardRun) Flip() {
	if !f.Done {
		f.Revealed = !f.Revealed
	}
}

// Mark records the self-report and advances. Marking the last card
// completes the run.
func (f *FlashcardRun) Mark(knew bool) {
	if f.Done {
		return
	}
	if knew {
		f.Score++
	}
	if f.Current >= len(f.Words)-1 {
		f.Done = true
		return
	}
	f.Current++
	f.Revealed = false
}

// TotalQuestions returns the card count.
func (f *FlashcardRun) TotalQuestions() int {
	return len(f.Words)
}
