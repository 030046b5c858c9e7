package vocab

import "github.com/ermek/bilim/internal/results"

// finalizedMsg is sent when a finished vocabulary exercise has been scored
// and saved.
type finalizedMsg struct {
	Result  results.ExerciseResult
	SaveErr error
}
