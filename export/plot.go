// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure geometry: 16×8 in at 100 dpi gives a 1600×800 pixel image.
const (
	figWidth  = 16 * vg.Inch
	figHeight = 8 * vg.Inch
	figDPI    = 100
)

// DefaultPlotPath is used by the plotting helpers when path is empty.
const DefaultPlotPath = "mesh.png"

// PlotStyle selects how a series is drawn.
type PlotStyle int

const (
	// Scatter draws one cross per point.
	Scatter PlotStyle = iota
	// Polyline joins consecutive points.
	Polyline
)

// ScatterPNG draws xs against ys as black crosses and writes a PNG to path.
//
// Errors: ErrLengthMismatch, ErrNoPoints, plus I/O failures.
func ScatterPNG(path, title string, xs, ys []float64) error {
	return renderPNG(path, title, xs, ys, Scatter)
}

// LinePNG draws xs against ys as a polyline and writes a PNG to path.
func LinePNG(path, title string, xs, ys []float64) error {
	return renderPNG(path, title, xs, ys, Polyline)
}

// PlotVertices scatters the x/y positions of every vertex of src.
func PlotVertices(path, title string, src Source) error {
	if src == nil {
		return ErrNilSource
	}
	var xs, ys []float64
	for v := range src.All() {
		xs = append(xs, v.Coords.X)
		ys = append(ys, v.Coords.Y)
	}
	return ScatterPNG(path, title, xs, ys)
}

func renderPNG(path, title string, xs, ys []float64, style PlotStyle) (err error) {
	if len(xs) != len(ys) {
		return fmt.Errorf("%d x values, %d y values: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) == 0 {
		return ErrNoPoints
	}
	if path == "" {
		path = DefaultPlotPath
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	switch style {
	case Polyline:
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("export: line: %w", err)
		}
		line.LineStyle.Color = color.Black
		p.Add(line)
	default:
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("export: scatter: %w", err)
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  color.Black,
			Radius: vg.Points(2.5),
			Shape:  draw.CrossGlyph{},
		}
		p.Add(sc)
	}

	img := vgimg.NewWith(vgimg.UseWH(figWidth, figHeight), vgimg.UseDPI(figDPI))
	p.Draw(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()
	if _, err = (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}
