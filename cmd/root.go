package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/memoriaviva/memoria/internal/config"
	"github.com/memoriaviva/memoria/internal/explain"
	"github.com/memoriaviva/memoria/internal/llm"
	"github.com/memoriaviva/memoria/internal/logger"
	"github.com/memoriaviva/memoria/internal/questiongen"
	"github.com/memoriaviva/memoria/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "memoria",
	Short: "Gamified history of the Chilean dictatorship",
	Long: "Memoria Viva: a terminal app to explore the timeline and key concepts of the\n" +
		"Chilean dictatorship (1973-1990) and test yourself with an AI-generated quiz\n" +
		"structured by Bloom's taxonomy.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default ./memoria.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MEMORIA_DB_PATH)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration and applies the --db override.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB.Path = p
	}
	return cfg, nil
}

// openStore opens the database at path, creating its directory first.
func openStore(path string) (*store.Store, error) {
	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

// runtime bundles what every command that talks to the model needs.
type runtime struct {
	cfg       *config.Config
	store     *store.Store
	log       *zap.SugaredLogger
	explainer explain.Gateway
	questions questiongen.Gateway
	offline   bool
}

func (r *runtime) Close() {
	_ = r.log.Sync()
	if r.store != nil {
		r.store.Close()
	}
}

// newRuntime loads config, opens the store and builds both gateways. When
// no credential is configured the gateways fall back to placeholders.
// fileLog sends logs to the configured file instead of stderr.
func newRuntime(cmd *cobra.Command, fileLog bool) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	var log *zap.SugaredLogger
	if fileLog {
		log, err = logger.NewFile(cfg.Env, cfg.Log.File)
	} else {
		log, err = logger.New(cfg.Env)
	}
	if err != nil {
		return nil, err
	}

	st, err := openStore(cfg.DB.Path)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, store: st, log: log}

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM.ProviderConfig(), st.EventRepo(), log)
	switch {
	case errors.Is(err, llm.ErrNoCredential):
		log.Infow("no LLM credential configured, using placeholder content")
		rt.offline = true
		provider = nil
	case err != nil:
		rt.Close()
		return nil, err
	}

	rt.explainer = explain.New(provider, cfg.LLM.ExplanationConfig(), log)
	rt.questions = questiongen.New(provider, cfg.LLM.QuestionConfig(), log)
	return rt, nil
}

func warnOffline(rt *runtime) {
	if rt.offline {
		fmt.Fprintln(os.Stderr, "LLM provider not configured: showing placeholder content.")
	}
}
