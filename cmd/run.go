package cmd

import (
	"github.com/spf13/cobra"

	"github.com/memoriaviva/memoria/internal/app"
	"github.com/memoriaviva/memoria/internal/catalog"
	"github.com/memoriaviva/memoria/internal/screens/challenge"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive app (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp builds dependencies and launches the TUI. Logs go to a file since
// the terminal belongs to the UI.
func runApp(cmd *cobra.Command) error {
	rt, err := newRuntime(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()
	warnOffline(rt)

	noSplash, _ := cmd.Flags().GetBool("no-splash")

	rt.log.Infow("starting", "version", version, "offline", rt.offline)

	return app.Run(cmd.Context(), app.Options{
		Catalog:   catalog.Default(),
		Explainer: rt.explainer,
		Questions: rt.questions,
		Results:   rt.store.ResultRepo(),
		Challenge: challenge.Config{
			QuestionsPerLevel: rt.cfg.Quiz.QuestionsPerLevel,
			FeedbackDelay:     rt.cfg.Quiz.FeedbackDelay,
			Offline:           rt.offline,
		},
		Log:    rt.log,
		Splash: !noSplash,
	})
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().Bool("no-splash", false, "Skip the welcome animation")
	}
}
