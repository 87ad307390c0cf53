package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/engine"
	"github.com/abhisek/studybuddy/internal/ui/theme"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question from your documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

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

		resp := d.recorder.Dispatch(ctx, engine.ChatRequest{
			Message:     strings.Join(args, " "),
			DocumentIDs: ids,
		})
		if asJSON {
			return printJSON(resp)
		}

		fmt.Println(resp.Content)
		if resp.Answer == nil || len(resp.Answer.Sources) == 0 {
			return nil
		}
		fmt.Println()
		fmt.Println(theme.Subtitle.Render("Sources"))
		for _, src := range resp.Answer.Sources {
			fmt.Printf("  %s  %s\n", theme.Muted.Render(src.DocumentID), truncate(src.Content, 200))
		}
		return nil
	},
}

func init() {
	addDocFlags(askCmd)
	askCmd.Flags().Bool("json", false, "Print the full response as JSON")
}
