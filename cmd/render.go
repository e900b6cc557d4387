package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/naka-gawa/github-stats-card/internal/domain"
	"github.com/naka-gawa/github-stats-card/internal/render"
	"github.com/naka-gawa/github-stats-card/internal/svg"
	"github.com/naka-gawa/github-stats-card/internal/usecase"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders GitHub user activity as an SVG stats card",
	Long: `Renders the contribution heatmap, language donut and contribution radar
of a GitHub user into one SVG file. Use --out - to write to standard output.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		out, _ := cmd.Flags().GetString("out")
		top, _ := cmd.Flags().GetInt("top")
		seasonal, _ := cmd.Flags().GetBool("seasonal")

		record, err := loadRecord(ctx, recordSourceFromFlags(cmd), logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		record = usecase.Options{TopLanguages: top, Seasonal: seasonal}.Apply(record)

		if err := writeCard(out, record); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("Generated: %s\n", out)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addRecordFlags(renderCmd)
	renderCmd.Flags().StringP("out", "o", "github_stats.svg", "Output SVG path, - for standard output")
	renderCmd.Flags().Int("top", 0, "Only show the N largest languages (0 shows all)")
	renderCmd.Flags().Bool("seasonal", false, "Color the heatmap by season instead of GitHub's day colors")
}

func writeCard(out string, record *domain.ActivityRecord) error {
	scene, err := render.Compose(*record, render.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to render card: %w", err)
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	return svg.Encode(w, scene)
}
