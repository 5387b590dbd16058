package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved learner and the progress event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return errors.New("this deletes all learner data; re-run with --yes to confirm")
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		if err := d.store.UserRepo().Delete(ctx, d.cfg.Key()); err != nil {
			return fmt.Errorf("delete learner: %w", err)
		}
		if err := d.store.EventRepo().Purge(ctx); err != nil {
			return fmt.Errorf("purge events: %w", err)
		}

		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "Learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
