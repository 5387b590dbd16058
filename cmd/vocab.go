package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/progress"
	"github.com/abhisek/lingualearn/internal/vocabimport"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect and import vocabulary",
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved words for a language",
	RunE: func(cmd *cobra.Command, args []string) error {
		language, _ := cmd.Flags().GetString("language")
		dueOnly, _ := cmd.Flags().GetBool("due")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		u, err := d.store.UserRepo().Load(cmd.Context(), d.cfg.Key())
		if err != nil {
			return fmt.Errorf("load learner: %w", err)
		}
		if u == nil {
			return errors.New("no learner registered yet")
		}

		lang := catalog.Language(language)
		if lang == "" {
			lang = u.SelectedLanguage
		}
		p := u.ProgressFor(lang)
		if p == nil {
			return fmt.Errorf("no progress for language %q", lang)
		}

		printVocabulary(cmd.OutOrStdout(), p, time.Now(), dueOnly)
		return nil
	},
}

var vocabImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add words from an .xlsx or .csv file",
	Long: "Add words from an .xlsx or .csv file. By default column A holds the word,\n" +
		"B the translation, and C an optional context; the first row is a header.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		language, _ := cmd.Flags().GetString("language")
		cfg := vocabimport.DefaultConfig()
		cfg.SheetName, _ = cmd.Flags().GetString("sheet")
		cfg.WordColumn, _ = cmd.Flags().GetString("word-col")
		cfg.TranslationColumn, _ = cmd.Flags().GetString("translation-col")
		cfg.ContextColumn, _ = cmd.Flags().GetString("context-col")
		cfg.StartRow, _ = cmd.Flags().GetInt("start-row")

		res, err := vocabimport.ImportFile(args[0], cfg)
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

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
		if e.User() == nil {
			return errors.New("no learner registered yet")
		}

		lang := catalog.Language(language)
		if lang == "" {
			lang = e.User().SelectedLanguage
		}
		words := lo.Map(res.Rows, func(r vocabimport.Row, _ int) engine.WordInput {
			return engine.WordInput{Word: r.Word, Translation: r.Translation, Context: r.Context}
		})
		added, err := e.ImportVocabulary(lang, words)
		if err != nil {
			return err
		}

		printImportResult(cmd.OutOrStdout(), res, lang, added)
		return nil
	},
}

func init() {
	vocabListCmd.Flags().String("language", "", "Language to list (default the selected language)")
	vocabListCmd.Flags().Bool("due", false, "Only show words due for review")

	def := vocabimport.DefaultConfig()
	vocabImportCmd.Flags().String("language", "", "Language to add to (default the selected language)")
	vocabImportCmd.Flags().String("sheet", "", "Worksheet name (default the first sheet)")
	vocabImportCmd.Flags().String("word-col", def.WordColumn, "Column holding the word")
	vocabImportCmd.Flags().String("translation-col", def.TranslationColumn, "Column holding the translation")
	vocabImportCmd.Flags().String("context-col", def.ContextColumn, "Column holding the context, empty to skip")
	vocabImportCmd.Flags().Int("start-row", def.StartRow, "First data row (1-based)")

	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabImportCmd)
}

func printVocabulary(w io.Writer, p *progress.LanguageProgress, now time.Time, dueOnly bool) {
	due := lo.Associate(p.DueWords(now), func(i int) (int, bool) { return i, true })
	dueStyle := color.New(color.FgYellow)

	fmt.Fprintf(w, "%-20s  %-20s  %-7s  %s\n", "Word", "Translation", "Mastery", "Next review")
	fmt.Fprintln(w, strings.Repeat("─", 70))

	shown := 0
	for i, v := range p.Vocabulary {
		if dueOnly && !due[i] {
			continue
		}
		next := v.NextReview().Local().Format("2006-01-02")
		if due[i] {
			next = dueStyle.Sprint("due")
		}
		fmt.Fprintf(w, "%-20s  %-20s  %-7s  %s\n",
			v.Word, v.Translation,
			strings.Repeat("●", v.MasteryLevel)+strings.Repeat("○", progress.MaxMastery-v.MasteryLevel),
			next)
		shown++
	}
	fmt.Fprintf(w, "\n%d words (%d due)\n", shown, len(due))
}

func printImportResult(w io.Writer, res *vocabimport.Result, lang catalog.Language, added int) {
	color.New(color.FgGreen).Fprintf(w, "Added %d words to %s", added, lang)
	fmt.Fprintf(w, " (%d rows read, %d skipped)\n", res.Processed, res.Skipped)
	warn := color.New(color.FgYellow)
	for _, msg := range res.Errors {
		warn.Fprintln(w, "  "+msg)
	}
}
