package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingualearn/internal/config"
	"github.com/abhisek/lingualearn/internal/engine"
	"github.com/abhisek/lingualearn/internal/notify"
	"github.com/abhisek/lingualearn/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lingualearn",
	Short: "Terminal language-learning app",
	Long:  "LinguaLearn: learn a language from the terminal with short lessons, XP, levels, and a vocabulary list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGUALEARN_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// deps holds the configuration and open store shared by commands.
type deps struct {
	cfg   *config.Config
	store *store.Store
}

// openDeps loads the configuration and opens the store. The database path
// comes from --db (highest priority), then LINGUALEARN_DB, then the default
// XDG path.
func openDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	override, _ := cmd.Flags().GetString("db")
	if override == "" {
		override = cfg.DBPath
	}
	dbPath, err := store.DefaultDBPath(override)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &deps{cfg: cfg, store: st}, nil
}

func (d *deps) Close() error {
	return d.store.Close()
}

// newEngine builds an engine over the store. Call Start before use.
func (d *deps) newEngine() *engine.Engine {
	opts := engine.Options{
		Languages: d.cfg.LanguageList(),
		Users:     d.store.UserRepo(),
		UserKey:   d.cfg.Key(),
		Queue:     notify.New(notify.WithTTL(d.cfg.TTL())),
	}
	if !d.cfg.DisableEventsLog {
		opts.Events = d.store.EventRepo()
	}
	return engine.New(opts)
}
