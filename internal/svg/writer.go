// Package svg serializes a render.Scene as an SVG document.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/naka-gawa/github-stats-card/internal/render"
)

// Marshal returns the SVG markup of the scene. Output is byte-for-byte
// reproducible for equal scenes.
func Marshal(scene render.Scene) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" style="%s">`,
		render.FormatNumber(scene.Width), render.FormatNumber(scene.Height),
		attr(fmt.Sprintf("background:%s; font-family: %s;", scene.Background, scene.FontFamily)))
	buf.WriteByte('\n')

	for _, layer := range scene.Layers {
		fmt.Fprintf(&buf, `<g class="%s"`, attr(layer.Name))
		if layer.Offset != (render.Point2D{}) {
			fmt.Fprintf(&buf, ` transform="translate(%s, %s)"`, render.FormatNumber(layer.Offset.X), render.FormatNumber(layer.Offset.Y))
		}
		buf.WriteString(">\n")
		for _, s := range layer.Shapes {
			if err := writeShape(&buf, s); err != nil {
				return nil, fmt.Errorf("layer %s: %w", layer.Name, err)
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("</g>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// Encode writes the SVG markup of the scene to w.
func Encode(w io.Writer, scene render.Scene) error {
	data, err := Marshal(scene)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func writeShape(buf *bytes.Buffer, s render.Shape) error {
	switch v := s.(type) {
	case render.Polygon:
		points := make([]string, 0, len(v.Points))
		for _, p := range v.Points {
			points = append(points, render.FormatNumber(p.X)+","+render.FormatNumber(p.Y))
		}
		fmt.Fprintf(buf, `<polygon points="%s" fill="%s"`, strings.Join(points, " "), attr(v.Fill))
		if v.Stroke != "" {
			fmt.Fprintf(buf, ` stroke="%s"`, attr(v.Stroke))
		}
		if v.StrokeWidth > 0 {
			fmt.Fprintf(buf, ` stroke-width="%s"`, render.FormatNumber(v.StrokeWidth))
		}
		writeClass(buf, v.Class)
		buf.WriteString("/>")
	case render.Path:
		fmt.Fprintf(buf, `<path d="%s" fill="%s"`, attr(v.D), attr(v.Fill))
		writeClass(buf, v.Class)
		buf.WriteString("/>")
	case render.Text:
		fmt.Fprintf(buf, `<text x="%s" y="%s" fill="%s" font-size="%s"`,
			render.FormatNumber(v.Pos.X), render.FormatNumber(v.Pos.Y), attr(v.Style.Fill), render.FormatNumber(v.Style.FontSize))
		if v.Style.Anchor != "" {
			fmt.Fprintf(buf, ` text-anchor="%s"`, attr(v.Style.Anchor))
		}
		if v.Style.Bold {
			buf.WriteString(` font-weight="bold"`)
		}
		writeClass(buf, v.Class)
		buf.WriteByte('>')
		buf.WriteString(attr(v.Content))
		buf.WriteString("</text>")
	default:
		return fmt.Errorf("unsupported shape %T", s)
	}
	return nil
}

func writeClass(buf *bytes.Buffer, class string) {
	if class != "" {
		fmt.Fprintf(buf, ` class="%s"`, attr(class))
	}
}

func attr(s string) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
