package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [language]",
	Short: "List the generated lessons",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		c := catalog.Generate(cfg.LanguageList())

		langs := c.Languages()
		if len(args) == 1 {
			lang := catalog.Language(args[0])
			if !c.Has(lang) {
				return fmt.Errorf("unknown language %q (available: %s)", args[0], joinLanguages(langs))
			}
			langs = []catalog.Language{lang}
		}

		printCatalog(cmd.OutOrStdout(), c, langs)
		return nil
	},
}

func joinLanguages(langs []catalog.Language) string {
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

func printCatalog(w io.Writer, c catalog.Catalog, langs []catalog.Language) {
	fmt.Fprintf(w, "%-28s  %-12s  %-14s  %-12s  %s\n", "ID", "Language", "Category", "Difficulty", "Exercises")
	fmt.Fprintln(w, strings.Repeat("─", 84))

	n := 0
	for _, lang := range langs {
		for _, cat := range catalog.AllCategories() {
			for _, l := range c.Lessons(lang, cat) {
				fmt.Fprintf(w, "%-28s  %-12s  %-14s  %-12s  %d\n",
					l.ID, lang, cat, l.Difficulty, len(l.Exercises))
				n++
			}
		}
	}
	fmt.Fprintf(w, "\n%d lessons\n", n)
}
