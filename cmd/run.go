package cmd

import (
	"fmt"

	"github.com/abhisek/mathsprout/internal/app"
	"github.com/abhisek/mathsprout/internal/history"
	"github.com/abhisek/mathsprout/internal/i18n"
	"github.com/abhisek/mathsprout/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		KV:         st,
		Archive:    history.Load(st),
		Translator: i18n.Default(),
	})
}
