package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/config"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/registry"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List template kinds and built-in scenes",
	Long:  `Shows the template kinds a scene can use and the scenes built into the binary.`,
	Args:  cobra.NoArgs,
	Run:   runKinds,
}

func runKinds(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	kinds := registry.List()

	// Calculate column width
	maxLen := 4 // "Kind" header
	for _, k := range kinds {
		maxLen = max(maxLen, len(k.Kind))
	}

	fmt.Fprintln(out, styled(titleStyle, "Template kinds:"))
	fmt.Fprintln(out)
	for _, k := range kinds {
		fmt.Fprintf(out, "  %s  %s\n", styled(nameStyle, fmt.Sprintf("%-*s", maxLen, k.Kind)), k.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styled(titleStyle, "Built-in scenes:"))
	fmt.Fprintln(out)
	for _, name := range config.Embedded() {
		marker := ""
		if name == config.DefaultScene {
			marker = styled(dimStyle, " (default)")
		}
		fmt.Fprintf(out, "  %s%s\n", styled(nameStyle, name), marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'sudokugfx render <scene>' to render a scene.")
}
