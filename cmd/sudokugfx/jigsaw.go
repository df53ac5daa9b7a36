package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/config"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/item"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/jigsaw"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/registry"
	"github.com/kyoyama-kazusa/Sudoku.Graphics-sub000/internal/template"
)

var (
	flagBlockSize int
	flagSeed      int64
	flagYAML      bool
)

var jigsawCmd = &cobra.Command{
	Use:   "jigsaw",
	Short: "Generate a random jigsaw layout",
	Long: `Generate irregular blocks for a (b*b)x(b*b) grid and print a preview.
With --yaml the layout is printed as a template entry for a scene file.

Examples:
  sudokugfx jigsaw
  sudokugfx jigsaw --block-size 4 --seed 7
  sudokugfx jigsaw --seed 42 --yaml >> scenes/mine.yaml`,
	Args: cobra.NoArgs,
	RunE: runJigsaw,
}

func init() {
	jigsawCmd.Flags().IntVarP(&flagBlockSize, "block-size", "b", 3, "Block side b; the grid is b*b cells wide")
	jigsawCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	jigsawCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the layout as a scene template entry")
}

func runJigsaw(cmd *cobra.Command, args []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	layout, err := jigsaw.Generate(flagBlockSize, seed)
	if err != nil {
		return err
	}
	logger.Debug("jigsaw generated", "size", layout.Size, "seed", seed)

	def := registry.Definition{Kind: template.KindJigsaw, Rows: layout.Size, Blocks: layout.Blocks()}
	out := cmd.OutOrStdout()

	if flagYAML {
		data, err := yaml.Marshal(map[string][]registry.Definition{"templates": {def}})
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	margin := 0.0
	def.CellSize, def.Margin = 16, &margin
	tpl, err := registry.Create(def)
	if err != nil {
		return err
	}
	built := config.Built{
		Templates: []template.Template{tpl},
		Lines:     template.DefaultLineOptions(def.CellSize),
		Items:     item.NewSet(),
	}
	fmt.Fprintf(out, "%s %s\n\n", styled(titleStyle, "Jigsaw layout"), styled(dimStyle, fmt.Sprintf("(seed %d)", seed)))
	return printPreview(out, built)
}
