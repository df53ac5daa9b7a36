// sudokugfx renders sudoku and puzzle grids to images.
//
// Usage:
//
//	sudokugfx render [scene]   - Render a scene to an image file
//	sudokugfx kinds            - List template kinds and built-in scenes
//	sudokugfx jigsaw           - Generate a random jigsaw layout
//	sudokugfx history [scene]  - Show recent renders
//
// Global flags:
//
//	--db <path>     - Set history database path (default: ~/.sudokugfx/history.db)
//	--no-history    - Do not record renders
//	-v, --verbose   - Log debug output
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/storage"
)

var (
	// Global flags
	flagDBPath    string
	flagNoHistory bool
	flagVerbose   bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styled(errStyle, "Error: "+err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sudokugfx",
	Short: "Render sudoku and puzzle grids to images",
	Long: `sudokugfx draws puzzle grids (standard, jigsaw, sujiken, formula and
free-form line layouts) with givens, candidates, cages and marks, and
exports them as PNG, JPEG, GIF or BMP.

Available commands:
  render   - Render a scene to an image file
  kinds    - List template kinds and built-in scenes
  jigsaw   - Generate a random jigsaw layout
  history  - Show recent renders

Examples:
  sudokugfx render
  sudokugfx render twins -o out/twins.png
  sudokugfx render -c my-scene.yaml --preview
  sudokugfx jigsaw --seed 42 --yaml
  sudokugfx history --stats`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(flagVerbose)
		gg.SetLogger(slog.New(logger))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to history database")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record renders")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(jigsawCmd)
	rootCmd.AddCommand(historyCmd)
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sudokugfx",
		Level:           level,
	})
}
