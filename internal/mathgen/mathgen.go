// Package mathgen produces randomized arithmetic questions for the math
// exercise flow. Content is randomized but the shape is deterministic:
// a fixed number of questions, each with four distinct answer options.
package mathgen

import (
	"fmt"
	"math/rand"
)

// Topic is an arithmetic operation category.
type Topic string

const (
	TopicAddition       Topic = "Addition"
	TopicSubtraction    Topic = "Subtraction"
	TopicMultiplication Topic = "Multiplication"
	TopicDivision       Topic = "Division"
)

// Topics lists all topics in display order.
func Topics() []Topic {
	return []Topic{TopicAddition, TopicSubtraction, TopicMultiplication, TopicDivision}
}

// Difficulty is a numeric-range tier. Each tier widens the operand range.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists all tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Question is a generated arithmetic question ready for display.
type Question struct {
	// ID is the 1-based position of the question within its batch.
	ID int

	// Prompt is the expression shown to the learner, e.g. "4 + 7" or "54 ÷ 6".
	Prompt string

	// Answer is the correct result.
	Answer int

	// Options holds exactly 4 distinct positive values, one of which
	// equals Answer. Order is randomized.
	Options []int
}

// DefaultBatchSize is the number of questions in a standard exercise.
const DefaultBatchSize = 5

// Generator produces question batches from an injected random source,
// so tests can seed it for reproducible output.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator backed by rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// intIn returns a random integer in [lo, hi] inclusive.
func (g *Generator) intIn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// GenerateBatch produces count questions for the given topic and difficulty.
func (g *Generator) GenerateBatch(topic Topic, difficulty Difficulty, count int) ([]Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("mathgen: batch size must be positive, got %d", count)
	}
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return nil, fmt.Errorf("mathgen: unknown difficulty %q", difficulty)
	}

	questions := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		var q Question
		switch topic {
		case TopicAddition:
			q = g.addition(difficulty)
		case TopicSubtraction:
			q = g.subtraction(difficulty)
		case TopicMultiplication:
			q = g.multiplication(difficulty)
		case TopicDivision:
			q = g.division(difficulty)
		default:
			return nil, fmt.Errorf("mathgen: unknown topic %q", topic)
		}
		q.ID = i + 1
		questions = append(questions, q)
	}
	return questions, nil
}

func (g *Generator) addition(difficulty Difficulty) Question {
	var a, b int
	switch difficulty {
	case DifficultyMedium:
		a, b = g.intIn(10, 59), g.intIn(10, 59)
	case DifficultyHard:
		a, b = g.intIn(50, 249), g.intIn(50, 249)
	default:
		a, b = g.intIn(1, 10), g.intIn(1, 10)
	}
	answer := a + b
	return Question{
		Prompt:  fmt.Sprintf("%d + %d", a, b),
		Answer:  answer,
		Options: g.Options(answer),
	}
}

func (g *Generator) subtraction(difficulty Difficulty) Question {
	var a int
	switch difficulty {
	case DifficultyMedium:
		a = g.intIn(20, 69)
	case DifficultyHard:
		a = g.intIn(100, 299)
	default:
		a = g.intIn(5, 14)
	}
	// Subtrahend never exceeds the minuend, so the result is non-negative.
	b := g.intIn(1, a)
	answer := a - b
	return Question{
		Prompt:  fmt.Sprintf("%d - %d", a, b),
		Answer:  answer,
		Options: g.Options(answer),
	}
}

func (g *Generator) multiplication(difficulty Difficulty) Question {
	var a, b int
	switch difficulty {
	case DifficultyMedium:
		a, b = g.intIn(2, 11), g.intIn(2, 11)
	case DifficultyHard:
		a, b = g.intIn(5, 19), g.intIn(5, 19)
	default:
		a, b = g.intIn(1, 5), g.intIn(1, 5)
	}
	answer := a * b
	return Question{
		Prompt:  fmt.Sprintf("%d × %d", a, b),
		Answer:  answer,
		Options: g.Options(answer),
	}
}

func (g *Generator) division(difficulty Difficulty) Question {
	var answer, divisor int
	switch difficulty {
	case DifficultyMedium:
		answer, divisor = g.intIn(2, 16), g.intIn(2, 11)
	case DifficultyHard:
		answer, divisor = g.intIn(5, 29), g.intIn(3, 17)
	default:
		answer, divisor = g.intIn(1, 8), g.intIn(1, 8)
	}
	// The dividend is built from the answer, so division is always exact.
	dividend := answer * divisor
	return Question{
		Prompt:  fmt.Sprintf("%d ÷ %d", dividend, divisor),
		Answer:  answer,
		Options: g.Options(answer),
	}
}

// Options returns 4 distinct positive values including correct, shuffled.
// Distractors are drawn from correct ± spread where spread is at least 10,
// so small answers still get a usable spread. For any correct ≥ 0 the
// window contains at least 10 positive candidates besides correct, so the
// draw loop always terminates.
func (g *Generator) Options(correct int) []int {
	spread := correct / 2
	if spread < 10 {
		spread = 10
	}

	options := []int{correct}
	for len(options) < 4 {
		candidate := correct + g.rng.Intn(2*spread) - spread
		if candidate <= 0 || candidate == correct {
			continue
		}
		if contains(options, candidate) {
			continue
		}
		options = append(options, candidate)
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
