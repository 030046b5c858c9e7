package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ermek/bilim/internal/app"
	"github.com/ermek/bilim/internal/config"
	"github.com/ermek/bilim/internal/mathgen"
	"github.com/ermek/bilim/internal/results"
	"github.com/ermek/bilim/internal/stats"
	"github.com/ermek/bilim/internal/store"
	"github.com/ermek/bilim/internal/wordbank"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.Load()

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	resultRepo := st.Results()
	statsSvc := stats.NewService(resultRepo)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	opts := app.Options{
		Profiles:   st.Profiles(),
		Generator:  mathgen.New(rng),
		Bank:       wordbank.NewStaticBank(),
		Rng:        rng,
		Recorder:   results.NewRecorder(resultRepo, statsSvc),
		ResultRepo: resultRepo,
		Stats:      statsSvc,
		Config:     cfg,
	}

	learner, err := st.Profiles().Load(ctx)
	switch {
	case err == nil:
		opts.Learner = &learner
	case errors.Is(err, store.ErrNoProfile):
		// first launch, the app opens with onboarding
	default:
		return fmt.Errorf("load profile: %w", err)
	}

	return app.Run(opts)
}
