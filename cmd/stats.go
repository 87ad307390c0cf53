package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show document and request counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		docs, err := st.Documents().List(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		counts, err := st.Events().CountByKind(ctx)
		if err != nil {
			return err
		}

		kinds := make([]string, 0, len(counts))
		total := 0
		for k, n := range counts {
			kinds = append(kinds, k)
			total += n
		}
		sort.Strings(kinds)

		fmt.Printf("Documents:  %d\n\n", len(docs))
		fmt.Printf("%-12s  %8s\n", "Kind", "Requests")
		fmt.Println(strings.Repeat("─", 22))
		for _, k := range kinds {
			fmt.Printf("%-12s  %8d\n", k, counts[k])
		}
		fmt.Println(strings.Repeat("─", 22))
		fmt.Printf("%-12s  %8d\n", "total", total)
		return nil
	},
}
