package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/memoriaviva/memoria/internal/catalog"
	"github.com/memoriaviva/memoria/internal/explain"
)

var explainCmd = &cobra.Command{
	Use:   "explain [topic]",
	Short: "Ask the model to explain an event or concept",
	Long: "Explain prints an AI-written explanation of a timeline event or a glossary\n" +
		"concept. With --all it fetches explanations for the whole catalog.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		concept, _ := cmd.Flags().GetBool("concept")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		if all == (len(args) == 1) {
			return errors.New("pass either a topic or --all")
		}

		rt, err := newRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()
		warnOffline(rt)

		out := cmd.OutOrStdout()
		if !all {
			kind := explain.KindEvent
			if concept {
				kind = explain.KindConcept
			}
			fmt.Fprintln(out, rt.explainer.FetchExplanation(cmd.Context(), args[0], kind))
			return nil
		}

		results, err := explain.FetchAll(cmd.Context(), rt.explainer, catalogTopics(catalog.Default()), concurrency)
		for _, r := range results {
			if r.Text == "" {
				continue
			}
			fmt.Fprintf(out, "%s (%s)\n%s\n%s\n\n", r.Topic.Name, r.Topic.Kind, strings.Repeat("─", 60), r.Text)
		}
		return err
	},
}

// catalogTopics lists every event and concept as an explanation topic.
func catalogTopics(cat *catalog.Catalog) []explain.Topic {
	var topics []explain.Topic
	for _, e := range cat.Events() {
		topics = append(topics, explain.Topic{Name: e.Title, Kind: explain.KindEvent})
	}
	for _, c := range cat.Concepts() {
		topics = append(topics, explain.Topic{Name: c.Term, Kind: explain.KindConcept})
	}
	return topics
}

func init() {
	explainCmd.Flags().Bool("concept", false, "Explain the topic as a concept rather than an event")
	explainCmd.Flags().Bool("all", false, "Explain every catalog entry")
	explainCmd.Flags().IntP("concurrency", "c", explain.DefaultConcurrency, "Parallel requests with --all")
}
