package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memoriaviva/memoria/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate a batch of quiz questions for one level",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("level")
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")

		level, err := quiz.ParseLevel(levelFlag)
		if err != nil {
			return err
		}
		if count < 1 || count > 10 {
			return fmt.Errorf("count must be between 1 and 10, got %d", count)
		}

		rt, err := newRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()
		warnOffline(rt)

		qs := rt.questions.FetchQuestions(cmd.Context(), level, count)
		out := cmd.OutOrStdout()

		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(qs)
		}

		if len(qs) == 0 {
			fmt.Fprintln(out, "No se generaron preguntas.")
			return nil
		}
		fmt.Fprintf(out, "Nivel: %s (%s)\n\n", level, level.Description())
		for i, q := range qs {
			fmt.Fprintf(out, "%d. %s\n", i+1, q.Text)
			for j, opt := range q.Options {
				mark := " "
				if q.IsCorrect(j) {
					mark = "*"
				}
				fmt.Fprintf(out, "   %s %s) %s\n", mark, quiz.OptionLabel(j), opt)
			}
			fmt.Fprintf(out, "   %s\n\n", q.Explanation)
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().StringP("level", "l", "remember", "Bloom level (key, Spanish label or 1-6)")
	questionsCmd.Flags().IntP("count", "n", 5, "Number of questions")
	questionsCmd.Flags().Bool("json", false, "Print the batch as JSON")
}
