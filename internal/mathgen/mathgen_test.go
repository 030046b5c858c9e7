package mathgen

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func testGen(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

func TestGenerateBatch_SizeAndIDs(t *testing.T) {
	g := testGen(1)
	qs, err := g.GenerateBatch(TopicAddition, DifficultyEasy, DefaultBatchSize)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(qs) != DefaultBatchSize {
		t.Fatalf("len(questions) = %d, want %d", len(qs), DefaultBatchSize)
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d, want %d", i, q.ID, i+1)
		}
	}
}

func TestGenerateBatch_OptionsInvariants(t *testing.T) {
	g := testGen(2)
	for _, topic := range Topics() {
		for _, diff := range Difficulties() {
			qs, err := g.GenerateBatch(topic, diff, 20)
			if err != nil {
				t.Fatalf("GenerateBatch(%s, %s): %v", topic, diff, err)
			}
			for _, q := range qs {
				if len(q.Options) != 4 {
					t.Fatalf("%s/%s %q: %d options, want 4", topic, diff, q.Prompt, len(q.Options))
				}
				seen := make(map[int]bool)
				answerCount := 0
				for _, opt := range q.Options {
					if seen[opt] {
						t.Errorf("%s/%s %q: duplicate option %d", topic, diff, q.Prompt, opt)
					}
					seen[opt] = true
					if opt == q.Answer {
						answerCount++
					} else if opt <= 0 {
						t.Errorf("%s/%s %q: non-positive distractor %d", topic, diff, q.Prompt, opt)
					}
				}
				if answerCount != 1 {
					t.Errorf("%s/%s %q: answer appears %d times in options", topic, diff, q.Prompt, answerCount)
				}
			}
		}
	}
}

func TestGenerateBatch_DivisionIsExact(t *testing.T) {
	g := testGen(3)
	qs, err := g.GenerateBatch(TopicDivision, DifficultyMedium, 50)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	for _, q := range qs {
		dividend, divisor := parsePrompt(t, q.Prompt, "÷")
		if divisor == 0 || dividend%divisor != 0 {
			t.Errorf("%q: %d %% %d != 0", q.Prompt, dividend, divisor)
		}
		if dividend/divisor != q.Answer {
			t.Errorf("%q: answer %d, want %d", q.Prompt, q.Answer, dividend/divisor)
		}
	}
}

func TestGenerateBatch_SubtractionNonNegative(t *testing.T) {
	g := testGen(4)
	for _, diff := range Difficulties() {
		qs, err := g.GenerateBatch(TopicSubtraction, diff, 50)
		if err != nil {
			t.Fatalf("GenerateBatch: %v", err)
		}
		for _, q := range qs {
			if q.Answer < 0 {
				t.Errorf("%s %q: negative answer %d", diff, q.Prompt, q.Answer)
			}
			a, b := parsePrompt(t, q.Prompt, "-")
			if a-b != q.Answer {
				t.Errorf("%q: answer %d, want %d", q.Prompt, q.Answer, a-b)
			}
		}
	}
}

func TestGenerateBatch_EasyAdditionRange(t *testing.T) {
	g := testGen(5)
	qs, err := g.GenerateBatch(TopicAddition, DifficultyEasy, 100)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	for _, q := range qs {
		a, b := parsePrompt(t, q.Prompt, "+")
		if a < 1 || a > 10 || b < 1 || b > 10 {
			t.Errorf("%q: operands outside [1,10]", q.Prompt)
		}
		if a+b != q.Answer {
			t.Errorf("%q: answer %d, want %d", q.Prompt, q.Answer, a+b)
		}
	}
}

func TestGenerateBatch_Errors(t *testing.T) {
	g := testGen(6)

	if _, err := g.GenerateBatch(Topic("Algebra"), DifficultyEasy, 5); err == nil {
		t.Error("expected error for unknown topic")
	}
	if _, err := g.GenerateBatch(TopicAddition, Difficulty("Extreme"), 5); err == nil {
		t.Error("expected error for unknown difficulty")
	}
	if _, err := g.GenerateBatch(TopicAddition, DifficultyEasy, 0); err == nil {
		t.Error("expected error for zero batch size")
	}
}

func TestOptions_SmallAnswers(t *testing.T) {
	g := testGen(7)
	// The spread floor of 10 keeps small answers from starving the draw loop.
	for correct := 1; correct <= 20; correct++ {
		opts := g.Options(correct)
		if len(opts) != 4 {
			t.Fatalf("Options(%d) returned %d values", correct, len(opts))
		}
		found := false
		for _, o := range opts {
			if o == correct {
				found = true
			}
		}
		if !found {
			t.Errorf("Options(%d) does not contain the correct answer: %v", correct, opts)
		}
	}
}

// parsePrompt splits "a OP b" into its two operands.
func parsePrompt(t *testing.T, prompt, op string) (int, int) {
	t.Helper()
	parts := strings.Split(prompt, " "+op+" ")
	if len(parts) != 2 {
		t.Fatalf("unexpected prompt format %q", prompt)
	}
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		t.Fatalf("parse %q: %v", parts[0], err)
	}
	b, err := strconv.Atoi(parts[1])
	if err != nil {
		t.Fatalf("parse %q: %v", parts[1], err)
	}
	return a, b
}
