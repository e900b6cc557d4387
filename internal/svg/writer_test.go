package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/naka-gawa/github-stats-card/internal/domain"
	"github.com/naka-gawa/github-stats-card/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_Shapes(t *testing.T) {
	scene := render.Scene{
		Width:      100,
		Height:     50,
		Background: "#ffffff",
		FontFamily: "sans-serif",
		Layers: []render.Layer{
			{
				Name: "plain",
				Shapes: []render.Shape{
					render.Polygon{
						Points: []render.Point2D{{X: 0, Y: 0}, {X: 1.5, Y: -0.0001}, {X: 2.12345, Y: 3}},
						Fill:   "#123456",
						Class:  "face-top",
					},
				},
			},
			{
				Name:   "moved",
				Offset: render.Point2D{X: 10, Y: 20},
				Shapes: []render.Shape{
					render.Path{D: "M 0 0 L 1 1 Z", Fill: "#00add8"},
					render.Polygon{
						Points:      []render.Point2D{{X: 1, Y: 1}},
						Fill:        "none",
						Stroke:      "#2ea043",
						StrokeWidth: 2,
					},
					render.Text{
						Pos:     render.Point2D{X: 50, Y: 40},
						Content: "C++ & <Go>",
						Style:   render.TextStyle{Fill: "#586069", FontSize: 24, Anchor: "middle", Bold: true},
					},
				},
			},
		},
	}

	out, err := Marshal(scene)
	require.NoError(t, err)
	doc := string(out)

	assert.True(t, strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50" style="background:#ffffff; font-family: sans-serif;">`))
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))
	assert.Contains(t, doc, "<g class=\"plain\">\n")
	assert.Contains(t, doc, `<polygon points="0,0 1.5,0 2.123,3" fill="#123456" class="face-top"/>`)
	assert.Contains(t, doc, `<g class="moved" transform="translate(10, 20)">`)
	assert.Contains(t, doc, `<path d="M 0 0 L 1 1 Z" fill="#00add8"/>`)
	assert.Contains(t, doc, `<polygon points="1,1" fill="none" stroke="#2ea043" stroke-width="2"/>`)
	assert.Contains(t, doc, `<text x="50" y="40" fill="#586069" font-size="24" text-anchor="middle" font-weight="bold">C++ &amp; &lt;Go&gt;</text>`)
	assert.Equal(t, 2, strings.Count(doc, "</g>"))
}

func TestMarshal_UnsupportedShape(t *testing.T) {
	_, err := Marshal(render.Scene{Layers: []render.Layer{{Name: "broken", Shapes: []render.Shape{nil}}}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "layer broken")
}

func TestEncode_ComposedScene(t *testing.T) {
	rec := domain.ActivityRecord{
		Calendar:  domain.CalendarGrid{{{Count: 0}, {Count: 5, Color: "#40c463"}}, {{Count: 3, Color: "#9be9a8"}}},
		Languages: domain.CategoryStat{"Go": {Magnitude: 80, Color: "#00add8"}, "Rust": {Magnitude: 20, Color: "#dea584"}},
		Metrics:   domain.MetricVector{10, 0, 2, 1, 0},
		Summary:   domain.Summary{TotalContributions: 8, TotalStars: 42, TotalForks: 7},
	}
	scene, err := render.Compose(rec, render.DefaultConfig())
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, Encode(&first, scene))
	require.NoError(t, Encode(&second, scene))
	assert.Equal(t, first.String(), second.String())

	doc := first.String()
	assert.Contains(t, doc, `viewBox="0 0 1400 1000"`)
	assert.Equal(t, 9, strings.Count(doc, `class="face-`))
	assert.Equal(t, 2, strings.Count(doc, `class="slice"`))
	assert.Contains(t, doc, `transform="translate(180, 820)"`)
	assert.Contains(t, doc, `transform="translate(1150, 250)"`)
	assert.Contains(t, doc, ">Rust</text>")
	assert.Contains(t, doc, "8 contributions")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode_WriteError(t *testing.T) {
	err := Encode(failingWriter{}, render.Scene{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write svg")
}
