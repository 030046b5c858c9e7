package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ermek/bilim/internal/store"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the learner profile and all recorded results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		learner, err := st.Profiles().Load(ctx)
		if errors.Is(err, store.ErrNoProfile) {
			fmt.Println("Nothing to reset.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		if !resetYes {
			fmt.Printf("Delete profile %q and all results? [y/N] ", learner.Name)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := st.Results().DeleteResults(ctx, learner.ID); err != nil {
			return fmt.Errorf("delete results: %w", err)
		}
		if err := st.Profiles().Delete(ctx, learner.ID); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		fmt.Println("All learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}
