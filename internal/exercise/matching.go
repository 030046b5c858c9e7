package exercise

import (
	"math/rand"

	"github.com/ermek/bilim/internal/wordbank"
)

// MatchingBoard is the matching-variant state: a pool of unmatched
// word/translation pairs. Each completed selection of one word and one
// translation evaluates immediately; matched pairs leave the pool.
type MatchingBoard struct {
	Pairs   []wordbank.Pair
	Matched []bool
	Score   int

	SelectedWord        string
	SelectedTranslation string

	// translationOrder is the shuffled display order of the translation
	// column, fixed at creation so the board doesn't jump around.
	translationOrder []int
}

// NewMatchingBoard builds a board from pairs, shuffling the translation column.
func NewMatchingBoard(pairs []wordbank.Pair, rng *rand.Rand) *MatchingBoard {
	order := rng.Perm(len(pairs))
	return &MatchingBoard{
		Pairs:            pairs,
		Matched:          make([]bool, len(pairs)),
		translationOrder: order,
	}
}

// UnmatchedWords returns the words still on the board, in pair order.
func (b *MatchingBoard) UnmatchedWords() []string {
	var words []string
	for i, p := range b.Pairs {
		if !b.Matched[i] {
			words = append(words, p.Word)
		}
	}
	return words
}

// UnmatchedTranslations returns the translations still on the board,
// in the board's shuffled display order.
func (b *MatchingBoard) UnmatchedTranslations() []string {
	var translations []string
	for _, idx := range b.translationOrder {
		if !b.Matched[idx] {
			translations = append(translations, b.Pairs[idx].Translation)
		}
	}
	return translations
}

// SelectWord toggles the word selection and evaluates if a translation is
// already selected. Returns (evaluated, matched).
func (b *MatchingBoard) SelectWord(word string) (bool, bool) {
	if b.Completed() {
		return false, false
	}
	if b.SelectedWord == word {
		b.SelectedWord = ""
		return false, false
	}
	b.SelectedWord = word
	if b.SelectedTranslation != "" {
		return true, b.evaluate()
	}
	return false, false
}

// SelectTranslation mirrors SelectWord for the translation column.
func (b *MatchingBoard) SelectTranslation(translation string) (bool, bool) {
	if b.Completed() {
		return false, false
	}
	if b.SelectedTranslation == translation {
		b.SelectedTranslation = ""
		return false, false
	}
	b.SelectedTranslation = translation
	if b.SelectedWord != "" {
		return true, b.evaluate()
	}
	return false, false
}

// evaluate checks the current word+translation selection against the pool
// and clears the selection either way.
func (b *MatchingBoard) evaluate() bool {
	word, translation := b.SelectedWord, b.SelectedTranslation
	b.SelectedWord = ""
	b.SelectedTranslation = ""

	for i, p := range b.Pairs {
		if b.Matched[i] {
			continue
		}
		if p.Word == word && p.Translation == translation {
			b.Matched[i] = true
			b.Score++
			return true
		}
	}
	return false
}

// Completed reports whether the pool is exhausted. A single leftover pair
// is treated as complete, matching the original board behavior.
func (b *MatchingBoard) Completed() bool {
	unmatched := 0
	for _, m := range b.Matched {
		if !m {
			unmatched++
		}
	}
	return unmatched <= 1
}

// TotalQuestions returns the pair count.
func (b *MatchingBoard) TotalQuestions() int {
	return len(b.Pairs)
}
