package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingualearn/internal/app"
)

// runApp opens the store, restores the saved learner, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	e := d.newEngine()
	defer e.Queue().Close()

	if err := e.Start(cmd.Context()); err != nil {
		return fmt.Errorf("restore learner: %w", err)
	}

	return app.Run(e, d.store.EventRepo())
}
