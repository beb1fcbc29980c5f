package cmd

import (
	"fmt"

	"github.com/abhisek/mathsprout/internal/history"
	"github.com/abhisek/mathsprout/internal/question"
	"github.com/abhisek/mathsprout/internal/session"
	"github.com/abhisek/mathsprout/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase saved sessions and high scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		keys := []string{
			history.SessionsKey,
			session.HighScoreKey(question.Toddler),
			session.HighScoreKey(question.EarlySchool),
			session.HighScoreKey(question.OlderKids),
		}
		for _, key := range keys {
			if err := st.Delete(key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}

		fmt.Println("All progress erased.")
		return nil
	},
}
