package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// Slice is the angular extent of one donut category, in radians.
// Start is measured clockwise from the positive x axis.
type Slice struct {
	Name  string
	Color string
	Start float64
	Sweep float64
}

// Slices lays categories out around the circle in Ranked order, each
// sweeping (magnitude / total) * 2π. It returns nil when the total is zero,
// since no proportion is defined.
func Slices(categories domain.CategoryStat) ([]Slice, error) {
	ranked := categories.Ranked()
	magnitudes := make(stats.Float64Data, 0, len(ranked))
	for _, c := range ranked {
		if c.Magnitude < 0 {
			return nil, fmt.Errorf("language %q: %w", c.Name, ErrNegativeCount)
		}
		magnitudes = append(magnitudes, float64(c.Magnitude))
	}
	total, err := stats.Sum(magnitudes)
	if err != nil || total == 0 {
		return nil, nil
	}

	slices := make([]Slice, 0, len(ranked))
	current := 0.0
	for _, c := range ranked {
		sweep := float64(c.Magnitude) / total * 2 * math.Pi
		slices = append(slices, Slice{Name: c.Name, Color: c.Color, Start: current, Sweep: sweep})
		current += sweep
	}
	return slices, nil
}

// Donut draws the annular slices and a legend of swatches and labels. The
// legend fills columns of cfg.Donut.LegendRows entries, left to right; a
// non-positive LegendRows puts every entry in one column. An all-zero input
// yields an empty layer.
func Donut(categories domain.CategoryStat, cfg Config) (Layer, error) {
	slices, err := Slices(categories)
	if err != nil {
		return Layer{}, err
	}
	dc := cfg.Donut
	rows := dc.LegendRows
	if rows <= 0 {
		rows = max(len(slices), 1)
	}
	shapes := make([]Shape, 0, 3*len(slices))

	for i, s := range slices {
		shapes = append(shapes, Path{
			D:     annulusPath(s.Start, s.Start+s.Sweep, dc.Radius, dc.InnerRadius),
			Fill:  s.Color,
			Class: "slice",
		})

		col, row := i/rows, i%rows
		origin := Point2D{
			X: dc.LegendX + float64(col)*dc.ColumnWidth,
			Y: dc.LegendY + float64(row)*dc.RowHeight,
		}
		shapes = append(shapes,
			Polygon{
				Points: []Point2D{
					origin,
					origin.Add(Point2D{X: dc.SwatchSize}),
					origin.Add(Point2D{X: dc.SwatchSize, Y: dc.SwatchSize}),
					origin.Add(Point2D{Y: dc.SwatchSize}),
				},
				Fill:  s.Color,
				Class: "swatch",
			},
			Text{
				Pos:     origin.Add(Point2D{X: dc.LabelGap, Y: dc.LabelDrop}),
				Content: s.Name,
				Style:   TextStyle{Fill: cfg.TextColor, FontSize: dc.FontSize},
				Class:   "legend",
			},
		)
	}
	return Layer{Name: LayerDonut, Offset: cfg.DonutOffset, Shapes: shapes}, nil
}

// annulusPath traces the outer arc clockwise from start to end, a line to the
// inner ring and the inner arc back, then closes.
// A full turn is split into two half arcs since an arc whose endpoints
// coincide draws nothing.
func annulusPath(start, end, outer, inner float64) string {
	if end-start >= 2*math.Pi-1e-9 {
		mid := start + math.Pi
		return fmt.Sprintf("M %s %s A %s %s 0 1 1 %s %s A %s %s 0 1 1 %s %s M %s %s A %s %s 0 1 0 %s %s A %s %s 0 1 0 %s %s Z",
			FormatNumber(math.Cos(start)*outer), FormatNumber(math.Sin(start)*outer),
			FormatNumber(outer), FormatNumber(outer), FormatNumber(math.Cos(mid)*outer), FormatNumber(math.Sin(mid)*outer),
			FormatNumber(outer), FormatNumber(outer), FormatNumber(math.Cos(start)*outer), FormatNumber(math.Sin(start)*outer),
			FormatNumber(math.Cos(start)*inner), FormatNumber(math.Sin(start)*inner),
			FormatNumber(inner), FormatNumber(inner), FormatNumber(math.Cos(mid)*inner), FormatNumber(math.Sin(mid)*inner),
			FormatNumber(inner), FormatNumber(inner), FormatNumber(math.Cos(start)*inner), FormatNumber(math.Sin(start)*inner),
		)
	}
	largeArc := 0
	if end-start > math.Pi {
		largeArc = 1
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "M %s %s ", FormatNumber(math.Cos(start)*outer), FormatNumber(math.Sin(start)*outer))
	fmt.Fprintf(&sb, "A %s %s 0 %d 1 %s %s ", FormatNumber(outer), FormatNumber(outer), largeArc, FormatNumber(math.Cos(end)*outer), FormatNumber(math.Sin(end)*outer))
	fmt.Fprintf(&sb, "L %s %s ", FormatNumber(math.Cos(end)*inner), FormatNumber(math.Sin(end)*inner))
	fmt.Fprintf(&sb, "A %s %s 0 %d 0 %s %s Z", FormatNumber(inner), FormatNumber(inner), largeArc, FormatNumber(math.Cos(start)*inner), FormatNumber(math.Sin(start)*inner))
	return sb.String()
}
