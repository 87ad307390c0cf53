package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studybuddy/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.Events().Query(cmd.Context(), store.QueryOpts{Limit: limit, Kind: kind})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-5s  %s\n", "Seq", "Timestamp", "Kind", "Docs", "Summary")
		fmt.Println(strings.Repeat("─", 80))
		for _, e := range events {
			fmt.Printf("%-5d  %-19s  %-10s  %-5d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Kind,
				len(e.DocumentIDs),
				truncate(e.Summary, 40),
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <seq>",
	Short: "Show one recorded request with its payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sequence %q: %w", args[0], err)
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		e, err := st.Events().Get(cmd.Context(), seq)
		if errors.Is(err, store.ErrEventNotFound) {
			return fmt.Errorf("event %d not found", seq)
		}
		if err != nil {
			return err
		}

		sep := strings.Repeat("─", 60)
		fmt.Printf("Sequence:   %d\n", e.Sequence)
		fmt.Printf("Time:       %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Request:    %s\n", e.RequestID)
		fmt.Printf("Kind:       %s\n", e.Kind)
		fmt.Printf("Documents:  %s\n", strings.Join(e.DocumentIDs, ", "))
		fmt.Printf("Summary:    %s\n", e.Summary)

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("PAYLOAD")
		fmt.Println(sep)
		if len(e.Payload) == 0 {
			fmt.Println("(none)")
			return nil
		}
		return printJSON(e.Payload)
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show (0 = all)")
	historyCmd.Flags().String("kind", "", "Only show one kind: chat, quiz or study-plan")

	historyCmd.AddCommand(historyShowCmd)
}
