// Package stats computes rollups over a learner's exercise history.
// Everything here is a pure function of the result records; stats are
// recomputed from scratch on demand and never stored.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/ermek/bilim/internal/results"
)

// Neutral defaults reported for an empty history.
const (
	DefaultSubject = results.SubjectMath
	DefaultTopic   = "Addition"
)

// SubjectStats is the per-subject rollup.
type SubjectStats struct {
	TotalCompleted int
	AverageScore   int // mean percentage, rounded; 0 with no results

	// BestTopic is only set for the math subject: the topic with the
	// highest mean percentage.
	BestTopic string
}

// UserStats is the full derived rollup for one learner.
type UserStats struct {
	TotalExercises  int
	AverageScore    int
	FavoriteSubject string
	Streak          int
	LastActive      time.Time
	PerSubject      map[string]SubjectStats
}

// Compute derives UserStats from the full result history. The input may be
// in any order; rollups that depend on order (favorite-subject tie-breaks,
// streaks) sort internally. An empty history yields zero-valued stats with
// neutral defaults, never an error.
func Compute(history []results.ExerciseResult, now time.Time) UserStats {
	if len(history) == 0 {
		return UserStats{
			FavoriteSubject: DefaultSubject,
			LastActive:      now,
			PerSubject: map[string]SubjectStats{
				results.SubjectMath: {BestTopic: DefaultTopic},
			},
		}
	}

	// Chronological copy: oldest first. Tie-break rules below are defined
	// in terms of this order.
	ordered := make([]results.ExerciseResult, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CompletedAt.Before(ordered[j].CompletedAt)
	})

	total := 0
	for _, r := range ordered {
		total += r.Percentage
	}

	perSubject := computePerSubject(ordered)

	return UserStats{
		TotalExercises:  len(ordered),
		AverageScore:    roundMean(total, len(ordered)),
		FavoriteSubject: favoriteSubject(ordered),
		Streak:          Streak(ordered, now),
		LastActive:      ordered[len(ordered)-1].CompletedAt,
		PerSubject:      perSubject,
	}
}

// favoriteSubject is the subject with the most results. Ties go to the
// subject that reached the winning count first in chronological order.
func favoriteSubject(ordered []results.ExerciseResult) string {
	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, r := range ordered {
		counts[r.Subject]++
		if counts[r.Subject] > bestCount {
			bestCount = counts[r.Subject]
			best = r.Subject
		}
	}
	return best
}

func computePerSubject(ordered []results.ExerciseResult) map[string]SubjectStats {
	perSubject := make(map[string]SubjectStats)
	totals := make(map[string]int)
	for _, r := range ordered {
		s := perSubject[r.Subject]
		s.TotalCompleted++
		totals[r.Subject] += r.Percentage
		perSubject[r.Subject] = s
	}
	for subject, s := range perSubject {
		s.AverageScore = roundMean(totals[subject], s.TotalCompleted)
		perSubject[subject] = s
	}

	if s, ok := perSubject[results.SubjectMath]; ok {
		s.BestTopic = bestMathTopic(ordered)
		perSubject[results.SubjectMath] = s
	} else {
		perSubject[results.SubjectMath] = SubjectStats{BestTopic: DefaultTopic}
	}
	return perSubject
}

// bestMathTopic returns the math topic with the highest mean percentage.
// Strict > comparison over topics in first-encounter order, so the earliest
// topic keeps the crown on ties.
func bestMathTopic(ordered []results.ExerciseResult) string {
	type tally struct {
		total, count int
	}
	tallies := make(map[string]*tally)
	var topicOrder []string

	for _, r := range ordered {
		if r.Subject != results.SubjectMath {
			continue
		}
		tl, ok := tallies[r.Topic]
		if !ok {
			tl = &tally{}
			tallies[r.Topic] = tl
			topicOrder = append(topicOrder, r.Topic)
		}
		tl.total += r.Percentage
		tl.count++
	}
	if len(topicOrder) == 0 {
		return DefaultTopic
	}

	best := ""
	bestAvg := -1.0
	for _, topic := range topicOrder {
		tl := tallies[topic]
		avg := float64(tl.total) / float64(tl.count)
		if avg > bestAvg {
			bestAvg = avg
			best = topic
		}
	}
	return best
}

// Streak counts consecutive calendar days with at least one result, walking
// backward from today and stopping at the first gap. Results are collapsed
// to unique days first, so several sessions on one day count once.
func Streak(history []results.ExerciseResult, now time.Time) int {
	if len(history) == 0 {
		return 0
	}

	seen := make(map[time.Time]bool)
	days := make([]time.Time, 0, len(history))
	for _, r := range history {
		day := midnight(r.CompletedAt)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	expected := midnight(now)
	for _, day := range days {
		if day.Equal(expected) {
			streak++
			expected = expected.AddDate(0, 0, -1)
			continue
		}
		if day.Before(expected) {
			break
		}
	}
	return streak
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func roundMean(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
