package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		u, err := d.store.UserRepo().Load(ctx, d.cfg.Key())
		if err != nil {
			return fmt.Errorf("load learner: %w", err)
		}
		counts, err := d.store.EventRepo().CountByKind(ctx)
		if err != nil {
			return fmt.Errorf("count events: %w", err)
		}
		events, err := d.store.EventRepo().QueryProgressEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		printStats(cmd.OutOrStdout(), statsInput{
			User:     u,
			Catalog:  catalog.Generate(d.cfg.LanguageList()),
			Counts:   counts,
			Sessions: store.SummarizeSessions(events),
			Now:      time.Now(),
		})
		return nil
	},
}

type statsInput struct {
	User     *progress.User
	Catalog  catalog.Catalog
	Counts   map[string]int
	Sessions []store.SessionSummary
	Now      time.Time
}

func printStats(w io.Writer, in statsInput) {
	bold := color.New(color.Bold)
	accent := color.New(color.FgYellow)
	dim := color.New(color.FgHiBlack)

	if in.User == nil {
		fmt.Fprintln(w, "No learner registered yet. Run lingualearn to sign up.")
		return
	}

	u := in.User
	bold.Fprintf(w, "%s", u.Username)
	if u.Email != "" {
		dim.Fprintf(w, " <%s>", u.Email)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Streak: %s   Total XP: %s   Last login: %s\n",
		accent.Sprintf("%d day(s)", u.Streak),
		accent.Sprintf("%d", u.TotalXP()),
		u.LastLogin.Local().Format("2006-01-02 15:04"))
	fmt.Fprintln(w)

	langs := lo.Keys(u.Progress)
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })

	fmt.Fprintf(w, "%-12s  %5s  %6s  %9s  %6s  %4s\n", "Language", "Level", "XP", "Lessons", "Words", "Due")
	fmt.Fprintln(w, strings.Repeat("─", 52))
	for _, lang := range langs {
		p := u.Progress[lang]
		if p == nil {
			continue
		}
		total := lo.SumBy(lo.Values(in.Catalog[lang]), func(ls []*catalog.Lesson) int { return len(ls) })
		name := string(lang)
		if lang == u.SelectedLanguage {
			name = "* " + name
		}
		fmt.Fprintf(w, "%-12s  %5d  %6d  %9s  %6d  %4d\n",
			name, p.Level, p.XP,
			fmt.Sprintf("%d/%d", len(p.CompletedLessons), total),
			len(p.Vocabulary), len(p.DueWords(in.Now)))
	}

	if len(in.Sessions) > 0 {
		exercises := lo.SumBy(in.Sessions, func(s store.SessionSummary) int { return s.Exercises })
		correct := lo.SumBy(in.Sessions, func(s store.SessionSummary) int { return s.Correct })
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Sessions: %d   Exercises: %d", len(in.Sessions), exercises)
		if exercises > 0 {
			fmt.Fprintf(w, "   Accuracy: %s", accent.Sprintf("%.0f%%", float64(correct)*100/float64(exercises)))
		}
		fmt.Fprintln(w)
	}

	if len(in.Counts) > 0 {
		fmt.Fprintln(w)
		kinds := lo.Keys(in.Counts)
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Fprintf(w, "  %-20s %d\n", k, in.Counts[k])
		}
	}
}
