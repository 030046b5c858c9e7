package wordbank

import (
	"fmt"
	"math/rand"
)

// QuizQuestion asks for the translation of one word among four choices.
type QuizQuestion struct {
	Word          Word
	Options       []string // 4 distinct translations, shuffled
	CorrectAnswer string   // always Word.Translation
}

// MinQuizWords is the smallest word set a quiz can be built from:
// one correct translation plus three distractors.
const MinQuizWords = 4

// MatchingPairLimit caps a matching round at six pairs, like the original
// board size.
const MatchingPairLimit = 6

// Pair is one word/translation pair on the matching board.
type Pair struct {
	Word        string
	Translation string
}

// BuildQuiz creates one quiz question per word. Distractor translations are
// sampled without replacement from the other words in the set, so options
// are distinct as long as translations are. Question order is shuffled.
func BuildQuiz(words []Word, rng *rand.Rand) ([]QuizQuestion, error) {
	if len(words) < MinQuizWords {
		return nil, fmt.Errorf("wordbank: quiz needs at least %d words, have %d", MinQuizWords, len(words))
	}

	questions := make([]QuizQuestion, 0, len(words))
	for _, w := range words {
		others := make([]Word, 0, len(words)-1)
		for _, o := range words {
			if o.ID != w.ID {
				others = append(others, o)
			}
		}
		rng.Shuffle(len(others), func(i, j int) {
			others[i], others[j] = others[j], others[i]
		})

		options := []string{w.Translation}
		for _, o := range others {
			if len(options) == 4 {
				break
			}
			options = append(options, o.Translation)
		}
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, QuizQuestion{
			Word:          w,
			Options:       options,
			CorrectAnswer: w.Translation,
		})
	}

	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions, nil
}

// BuildPairs takes up to MatchingPairLimit words for a matching round.
func BuildPairs(words []Word) []Pair {
	n := len(words)
	if n > MatchingPairLimit {
		n = MatchingPairLimit
	}
	pairs := make([]Pair, 0, n)
	for _, w := range words[:n] {
		pairs = append(pairs, Pair{Word: w.Word, Translation: w.Translation})
	}
	return pairs
}
