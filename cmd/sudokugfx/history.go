package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryStats bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [scene]",
	Short: "Show recent renders",
	Long: `Display recently rendered images, optionally for one scene.

Examples:
  sudokugfx history
  sudokugfx history classic --limit 5
  sudokugfx history --stats
  sudokugfx history twins --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of renders to show")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show per-scene statistics")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete history (of one scene if given)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	scene := ""
	if len(args) > 0 {
		scene = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagHistoryClear:
		if err := store.Clear(scene); err != nil {
			return err
		}
		fmt.Fprintln(out, styled(okStyle, "History cleared."))
		return nil

	case flagHistoryStats:
		stats, err := store.Stats()
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Fprintln(out, "No renders recorded yet.")
			return nil
		}
		names := make([]string, 0, len(stats))
		for name := range stats {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(out, styled(titleStyle, "Scene statistics"))
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-12s  %-7s  %-8s  %s\n", "Scene", "Renders", "Average", "Last")
		fmt.Fprintf(out, "  %-12s  %-7s  %-8s  %s\n", "-----", "-------", "-------", "----")
		for _, name := range names {
			st := stats[name]
			fmt.Fprintf(out, "  %-12s  %-7d  %-8s  %s\n",
				st.Scene, st.Renders, st.AvgDuration.Round(time.Millisecond), st.LastRendered.Format("2006-01-02 15:04"))
		}
		return nil
	}

	var renders []storage.Render
	if scene != "" {
		renders, err = store.ByScene(scene, flagHistoryLimit)
	} else {
		renders, err = store.Recent(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	if len(renders) == 0 {
		fmt.Fprintln(out, "No renders recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'sudokugfx render' to create the first one!")
		return nil
	}

	fmt.Fprintln(out, styled(titleStyle, "Recent renders"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-4s  %-12s  %-9s  %-6s  %-16s  %s\n", "ID", "Scene", "Size", "Format", "Date", "Output")
	fmt.Fprintf(out, "  %-4s  %-12s  %-9s  %-6s  %-16s  %s\n", "--", "-----", "----", "------", "----", "------")
	for _, r := range renders {
		fmt.Fprintf(out, "  %-4d  %-12s  %-9s  %-6s  %-16s  %s\n",
			r.ID, r.Scene, fmt.Sprintf("%dx%d", r.Width, r.Height), r.Format,
			r.CreatedAt.Format("2006-01-02 15:04"), styled(dimStyle, r.Output))
	}
	return nil
}
