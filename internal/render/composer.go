package render

import (
	"fmt"

	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// FooterText formats the summary line.
func FooterText(s domain.Summary) string {
	return fmt.Sprintf("%d contributions    ⭐ %d    🍴 %d", s.TotalContributions, s.TotalStars, s.TotalForks)
}

// Compose renders every chart of the record and places each layer at its
// fixed offset. The footer is centered horizontally near the bottom edge.
func Compose(rec domain.ActivityRecord, cfg Config) (Scene, error) {
	heatmap, err := Heatmap(rec.Calendar, cfg)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to render heatmap: %w", err)
	}
	donut, err := Donut(rec.Languages, cfg)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to render donut: %w", err)
	}
	radar, err := Radar(rec.Metrics, cfg)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to render radar: %w", err)
	}

	footer := Layer{
		Name: LayerFooter,
		Shapes: []Shape{Text{
			Pos:     Point2D{X: cfg.Width / 2, Y: cfg.Height - cfg.Footer.Margin},
			Content: FooterText(rec.Summary),
			Style: TextStyle{
				Fill:     cfg.TextColor,
				FontSize: cfg.Footer.FontSize,
				Anchor:   "middle",
				Bold:     cfg.Footer.Bold,
			},
			Class: "summary",
		}},
	}

	return Scene{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		FontFamily: cfg.FontFamily,
		Layers:     []Layer{heatmap, donut, radar, footer},
	}, nil
}
