package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/phanxgames/fling/journal"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded swipe outcomes",
	Long: `Show the most recent exits and zone clicks from the journal, followed by
exit counts per edge.

Examples:
  flingdemo history
  flingdemo history --limit 50 --db ./journal.db`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if flagDBPath == "" {
		return fmt.Errorf("history needs a journal: pass --db")
	}
	jr, err := journal.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer jr.Close()

	entries, err := jr.Recent(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No outcomes recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'flingdemo run' and swipe a few cards!")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-10s  %-7s  %s\n", "Date", "Kind", "Where", "Card")
	fmt.Fprintf(out, "  %-16s  %-10s  %-7s  %s\n", "----", "----", "-----", "----")
	for _, e := range entries {
		fmt.Fprintf(out, "  %-16s  %-10s  %-7s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Kind, e.Direction, e.Card)
	}

	counts, err := jr.CountByEdge()
	if err != nil {
		return err
	}
	edges := make([]string, 0, len(counts))
	for edge := range counts {
		edges = append(edges, edge)
	}
	sort.Strings(edges)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Exits by edge:")
	for _, edge := range edges {
		fmt.Fprintf(out, "  %-7s %d\n", edge, counts[edge])
	}
	return nil
}
