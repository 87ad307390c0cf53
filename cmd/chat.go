package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with your documents in the terminal",
	Long: `Open an interactive chat over the selected documents.

Type a question and press Enter. /quiz [message] starts a quiz,
/plan [days] shows a study plan and /quit leaves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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
		return tui.RunChat(ctx, d.recorder, ids)
	},
}

func init() {
	addDocFlags(chatCmd)
}
