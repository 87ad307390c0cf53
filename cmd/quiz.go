package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/engine"
	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/tui"
	"github.com/abhisek/studybuddy/internal/ui/components"
	"github.com/abhisek/studybuddy/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate a multiple-choice quiz from a document",
	Long: `Generate a multiple-choice quiz from the first selected document.

By default the questions are printed with their answers. Use --play to
answer them interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		asJSON, _ := cmd.Flags().GetBool("json")
		play, _ := cmd.Flags().GetBool("play")
		if asJSON && play {
			return fmt.Errorf("use --json or --play, not both")
		}

		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		ids, err := selectedDocuments(ctx, cmd, d.store)
		if err != nil {
			return err
		}

		resp := d.recorder.Dispatch(ctx, engine.QuizRequest{
			DocumentIDs: ids,
			Count:       quizCount(count, d.cfg.Quiz.DefaultCount, d.cfg.Quiz.Max),
			Difficulty:  difficulty,
		})
		if asJSON {
			return printJSON(resp)
		}
		if resp.Quiz == nil {
			fmt.Println(resp.Content)
			return nil
		}

		if play {
			correct, total, err := tui.RunQuiz(resp.Quiz.Title, resp.Quiz.Questions)
			if err != nil {
				return err
			}
			fmt.Printf("── Summary: %d/%d correct ──\n", correct, total)
			return nil
		}

		fmt.Println(resp.Content)
		fmt.Println()
		printQuestions(resp.Quiz.Questions)
		return nil
	},
}

func init() {
	addDocFlags(quizCmd)
	quizCmd.Flags().IntP("count", "n", 0, "Number of questions (default from config)")
	quizCmd.Flags().String("difficulty", "", "Difficulty label: easy, medium or hard")
	quizCmd.Flags().Bool("json", false, "Print the quiz as JSON")
	quizCmd.Flags().Bool("play", false, "Answer the quiz interactively")
}

// quizCount picks the flag value, falling back to def and capping at limit.
func quizCount(n, def, limit int) int {
	if n < 1 {
		n = def
	}
	if limit > 0 && n > limit {
		n = limit
	}
	return n
}

func printQuestions(questions []quiz.Question) {
	for i, q := range questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(questions))
		fmt.Println(q.Prompt)
		for j, opt := range q.Options {
			line := fmt.Sprintf("  %s) %s", components.OptionLabel(j), opt)
			if j == q.Correct {
				line = theme.Correct.Render(line + "  ✓")
			}
			fmt.Println(line)
		}
		if q.Explanation != "" {
			fmt.Println(theme.Hint.Render("Explanation: " + q.Explanation))
		}
		fmt.Println()
	}
}
