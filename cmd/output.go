package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/store"
)

// addDocFlags registers --doc and --all on a command that reads documents.
func addDocFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("doc", nil, "Document ID to use (repeatable)")
	cmd.Flags().Bool("all", false, "Use every stored document")
}

// selectedDocuments returns the --doc values, or every stored id with --all.
func selectedDocuments(ctx context.Context, cmd *cobra.Command, st *store.Store) ([]string, error) {
	ids, _ := cmd.Flags().GetStringSlice("doc")
	all, _ := cmd.Flags().GetBool("all")
	if !all {
		return ids, nil
	}
	if len(ids) > 0 {
		return nil, fmt.Errorf("use --doc or --all, not both")
	}

	docs, err := st.Documents().List(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func printJSON(v any) error {
	return writeJSON(os.Stdout, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
