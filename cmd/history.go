package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingualearn/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		language, _ := cmd.Flags().GetString("language")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		events, err := d.store.EventRepo().QueryProgressEvents(cmd.Context(), store.QueryOpts{Language: language})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		sessions := store.SummarizeSessions(events)
		if limit > 0 && len(sessions) > limit {
			sessions = sessions[:limit]
		}
		printHistory(cmd.OutOrStdout(), sessions)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to show")
	historyCmd.Flags().String("language", "", "Only count events for this language")
}

func printHistory(w io.Writer, sessions []store.SessionSummary) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions found.")
		return
	}

	good := color.New(color.FgGreen)

	fmt.Fprintf(w, "%-16s  %8s  %9s  %8s  %6s  %7s  %s\n",
		"Started", "Duration", "Exercises", "Accuracy", "XP", "Lessons", "Languages")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, s := range sessions {
		d := s.Duration()
		acc := "-"
		if s.Exercises > 0 {
			acc = fmt.Sprintf("%.0f%%", s.Accuracy()*100)
		}
		xp := fmt.Sprintf("%6d", s.XP)
		if s.XP > 0 {
			xp = good.Sprint(xp)
		}
		fmt.Fprintf(w, "%-16s  %8s  %9d  %8s  %s  %7d  %s\n",
			s.Start.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60),
			s.Exercises, acc, xp, s.LessonsCompleted,
			strings.Join(s.Languages, ", "))
	}
	fmt.Fprintf(w, "\n%d sessions\n", len(sessions))
}
