package wordbank

import (
	"math/rand"
	"testing"
)

func testWords(n int) []Word {
	words := make([]Word, 0, n)
	letters := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i := 0; i < n; i++ {
		words = append(words, Word{
			ID:          letters[i],
			Word:        "word-" + letters[i],
			Translation: "trans-" + letters[i],
			Tier:        TierBeginner,
		})
	}
	return words
}

func TestBuildQuiz_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	words := testWords(8)

	questions, err := BuildQuiz(words, rng)
	if err != nil {
		t.Fatalf("BuildQuiz: %v", err)
	}
	if len(questions) != len(words) {
		t.Fatalf("got %d questions, want %d", len(questions), len(words))
	}

	for _, q := range questions {
		if len(q.Options) != 4 {
			t.Fatalf("question for %q has %d options, want 4", q.Word.Word, len(q.Options))
		}
		if q.CorrectAnswer != q.Word.Translation {
			t.Errorf("correct answer %q, want %q", q.CorrectAnswer, q.Word.Translation)
		}
		seen := make(map[string]bool)
		correctCount := 0
		for _, opt := range q.Options {
			if seen[opt] {
				t.Errorf("question for %q repeats option %q", q.Word.Word, opt)
			}
			seen[opt] = true
			if opt == q.CorrectAnswer {
				correctCount++
			}
		}
		if correctCount != 1 {
			t.Errorf("question for %q contains the answer %d times", q.Word.Word, correctCount)
		}
	}
}

func TestBuildQuiz_TooFewWords(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := BuildQuiz(testWords(3), rng); err == nil {
		t.Error("expected error for a 3-word set")
	}
}

func TestBuildPairs_Caps(t *testing.T) {
	pairs := BuildPairs(testWords(8))
	if len(pairs) != MatchingPairLimit {
		t.Errorf("got %d pairs, want %d", len(pairs), MatchingPairLimit)
	}

	pairs = BuildPairs(testWords(4))
	if len(pairs) != 4 {
		t.Errorf("got %d pairs, want 4", len(pairs))
	}
}

func TestStaticBank_Lookup(t *testing.T) {
	bank := NewStaticBank()

	if len(bank.Languages()) == 0 {
		t.Fatal("no built-in languages")
	}

	words, err := bank.Words("en", "en-beginner")
	if err != nil {
		t.Fatalf("Words(en, en-beginner): %v", err)
	}
	if len(words) < MinQuizWords {
		t.Errorf("beginner level has %d words, want at least %d for quizzes", len(words), MinQuizWords)
	}

	if _, err := bank.Words("en", "nope"); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := bank.Words("xx", "en-beginner"); err == nil {
		t.Error("expected error for unknown language")
	}
}

func TestStaticBank_EveryLevelSupportsQuiz(t *testing.T) {
	bank := NewStaticBank()
	for _, lang := range bank.Languages() {
		for _, level := range lang.Levels {
			if len(level.Words) < MinQuizWords {
				t.Errorf("%s/%s has %d words, want at least %d", lang.Code, level.ID, len(level.Words), MinQuizWords)
			}
			for _, w := range level.Words {
				if w.Word == "" || w.Translation == "" {
					t.Errorf("%s/%s has incomplete word %q", lang.Code, level.ID, w.ID)
				}
			}
		}
	}
}
