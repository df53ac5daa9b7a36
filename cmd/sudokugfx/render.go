package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/canvas"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/config"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/export"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/paint"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/preview"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/storage"
)

var (
	flagScenePath string
	flagOut       string
	flagQuality   int
	flagPreview   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [scene]",
	Short: "Render a scene to an image file",
	Long: `Load a scene and export it. The format follows the output extension
(.png, .jpg, .jpeg, .gif, .bmp).

Scenes are searched in ~/.sudokugfx/scenes, ./scenes and the built-in set.
Run 'sudokugfx kinds' to list the built-in scenes.

Examples:
  sudokugfx render
  sudokugfx render jigsaw -o jigsaw.jpg --quality 80
  sudokugfx render -c puzzle.yaml --preview`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagScenePath, "config", "c", "", "Path to a scene file")
	renderCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output path (default: the scene's output)")
	renderCmd.Flags().IntVar(&flagQuality, "quality", 0, "JPEG quality 1-100")
	renderCmd.Flags().BoolVar(&flagPreview, "preview", false, "Print a text preview instead of exporting")
}

func runRender(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	scene, err := config.Load(name, flagScenePath)
	if err != nil {
		return err
	}
	built, err := scene.Build()
	if err != nil {
		return fmt.Errorf("scene %s: %w", scene.Name, err)
	}
	logger.Debug("scene loaded", "name", scene.Name, "templates", len(built.Templates), "items", built.Items.Len())

	if flagPreview {
		return printPreview(cmd.OutOrStdout(), built)
	}

	out := flagOut
	if out == "" {
		out = scene.Output
	}
	if out == "" {
		out = scene.Name + ".png"
	}
	format, err := export.FormatFromPath(out)
	if err != nil {
		return err
	}
	quality := scene.Quality
	if flagQuality > 0 {
		quality.JPEG = flagQuality
	}

	start := time.Now()
	c, err := canvas.New(built.Templates, canvas.Options{Logger: logger})
	if err != nil {
		return err
	}
	defer dispose(c)

	c.FillBackground(built.Background)
	if err := c.DrawItems(c.Layer(built.Items, built.Lines, built.Intersections)); err != nil {
		return err
	}
	if err := c.Export(out, quality); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if !flagNoHistory {
		recordRender(storage.Render{
			Scene:     scene.Name,
			Output:    absPath(out),
			Format:    format.String(),
			Width:     c.Width(),
			Height:    c.Height(),
			Templates: len(built.Templates),
			Items:     built.Items.Len(),
			Duration:  elapsed,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		styled(okStyle, "Rendered"),
		styled(nameStyle, out),
		styled(dimStyle, fmt.Sprintf("(%dx%d, %s)", c.Width(), c.Height(), elapsed.Round(time.Millisecond))))
	return nil
}

// printPreview draws the scene onto a text screen.
func printPreview(w io.Writer, built config.Built) error {
	var screen *preview.Screen
	cellSize := built.Templates[0].Mapper().CellSize
	c, err := canvas.New(built.Templates, canvas.Options{
		Logger: logger,
		Surface: func(width, height int) paint.Backing {
			screen = preview.NewScreen(width, height, cellSize)
			return screen
		},
	})
	if err != nil {
		return err
	}
	defer dispose(c)

	if err := c.DrawItems(c.Layer(built.Items, built.Lines, nil)); err != nil {
		return err
	}
	if tw := terminalWidth(); tw > 0 && screen.Width() > tw {
		logger.Warn("preview is wider than the terminal", "preview", screen.Width(), "terminal", tw)
	}
	_, err = fmt.Fprintln(w, screen.String())
	return err
}

// dispose releases the canvas surface, logging a failure.
func dispose(c *canvas.Canvas) {
	if err := c.Dispose(); err != nil {
		logger.Warn("could not release canvas surface", "error", err)
	}
}

// recordRender saves a render, logging instead of failing when the history
// database is unavailable.
func recordRender(r storage.Render) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRender(r); err != nil {
		logger.Warn("could not record render", "error", err)
	}
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
