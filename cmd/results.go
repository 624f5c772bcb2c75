package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List finished challenge playthroughs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cfg.DB.Path)
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.ResultRepo().RecentResults(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}

		if len(results) == 0 {
			fmt.Fprintln(out, "No results yet.")
			return nil
		}

		fmt.Fprintf(out, "%-19s  %6s  %8s  %-8s  %s\n", "Finished", "Score", "Correct", "Mode", "Levels")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, r := range results {
			mode := "online"
			if r.Offline {
				mode = "offline"
			}
			levels := make([]string, 0, len(r.Levels))
			for _, l := range r.Levels {
				levels = append(levels, fmt.Sprintf("%s %d/%d", l.Level, l.Correct, l.Total))
			}
			fmt.Fprintf(out, "%-19s  %6d  %3d/%-4d  %-8s  %s\n",
				r.FinishedAt.Local().Format("2006-01-02 15:04:05"),
				r.Score, r.Correct, r.Answered, mode, strings.Join(levels, ", "))
		}
		return nil
	},
}

func init() {
	resultsCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
	resultsCmd.Flags().Bool("json", false, "Print results as JSON")
}
