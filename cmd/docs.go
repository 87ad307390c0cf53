package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/store"
	"github.com/abhisek/studybuddy/internal/textproc"
	"github.com/abhisek/studybuddy/internal/ui/theme"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage stored documents",
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		docs, err := st.Documents().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		if len(docs) == 0 {
			fmt.Println("No documents yet. Add one with: studybuddy ingest <file>")
			return nil
		}

		fmt.Printf("%-36s  %-30s  %8s  %-19s\n", "ID", "Name", "Chars", "Added")
		fmt.Println(strings.Repeat("─", 100))
		for _, d := range docs {
			fmt.Printf("%-36s  %-30s  %8d  %-19s\n",
				d.ID,
				truncate(d.FileName, 30),
				len([]rune(d.Text)),
				d.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			)
		}
		fmt.Printf("\n%d %s\n", len(docs), plural(len(docs), "document"))
		return nil
	},
}

var docsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a document's metadata and opening paragraph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		d, err := st.Documents().Get(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("document %s not found", args[0])
		}
		if err != nil {
			return err
		}

		ix := textproc.NewIndex(d.ID, d.FileName, d.Text)
		fmt.Println(theme.Title.Render(d.FileName))
		fmt.Printf("ID:          %s\n", d.ID)
		fmt.Printf("Added:       %s\n", d.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Updated:     %s\n", d.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Characters:  %d\n", len([]rune(ix.Text)))
		fmt.Printf("Sentences:   %d\n", len(ix.Sentences))
		fmt.Printf("Paragraphs:  %d\n", len(ix.Paragraphs))

		preview := ix.Text
		if len(ix.Paragraphs) > 0 {
			preview = ix.Paragraphs[0].Text
		}
		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(truncate(preview, 600))
		return nil
	},
}

var docsRmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		for _, id := range args {
			if err := st.Documents().Delete(cmd.Context(), id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("document %s not found", id)
				}
				return err
			}
			fmt.Println("Deleted", id)
		}
		return nil
	},
}

func init() {
	docsListCmd.Flags().Int("limit", 0, "Maximum number of documents to show (0 = all)")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsShowCmd)
	docsCmd.AddCommand(docsRmCmd)
}
