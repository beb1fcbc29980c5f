package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/mathsprout/internal/history"
	"github.com/abhisek/mathsprout/internal/i18n"
	"github.com/abhisek/mathsprout/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the parent report",
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

		archive := history.Load(st)
		fmt.Println(history.GenerateReport(archive, i18n.Default(), time.Now()))
		return nil
	},
}
