package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"path"
	"path/filepath"
	"sort"
	"strings"

	apperrors "benchreport/internal/errors"
	"benchreport/internal/telemetry"
	"benchreport/internal/utils"

	"github.com/spf13/afero"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Supported image formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Renderer encodes a chart in the given image format.
type Renderer interface {
	Render(w io.Writer, c Chart, format string) error
}

// PlotRenderer draws charts with gonum/plot.
type PlotRenderer struct {
	Width    vg.Length
	Height   vg.Length
	BarWidth vg.Length
}

// NewPlotRenderer returns a renderer producing 15x7.5 inch charts.
func NewPlotRenderer() *PlotRenderer {
	return &PlotRenderer{
		Width:    15 * vg.Inch,
		Height:   7.5 * vg.Inch,
		BarWidth: vg.Points(40),
	}
}

var barColor = color.RGBA{R: 144, G: 238, B: 144, A: 255} // light green

type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Render draws c on a fresh plot and writes it to w.
func (r *PlotRenderer) Render(w io.Writer, c Chart, format string) error {
	if len(c.Values) == 0 {
		return fmt.Errorf("chart %q has no bars", c.Title)
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel

	bars, err := plotter.NewBarChart(plotter.Values(c.Values), r.BarWidth)
	if err != nil {
		return fmt.Errorf("failed to create bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Color = color.Black
	bars.LineStyle.Width = vg.Points(0.75)
	p.Add(bars)

	pts := errorPoints{
		XYs:     make(plotter.XYs, len(c.Values)),
		YErrors: make(plotter.YErrors, len(c.Values)),
	}
	for i, v := range c.Values {
		pts.XYs[i] = plotter.XY{X: float64(i), Y: v}
		var e float64
		if i < len(c.Errors) {
			e = math.Abs(c.Errors[i])
		}
		pts.YErrors[i].Low, pts.YErrors[i].High = e, e
	}
	errBars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return fmt.Errorf("failed to create error bars: %w", err)
	}
	errBars.CapWidth = vg.Points(10)
	p.Add(errBars)

	ticks := make([]plot.Tick, len(c.Ticks))
	for i, label := range c.Ticks {
		ticks[i] = plot.Tick{Value: float64(i), Label: label}
	}
	p.X.Min = -0.5
	p.X.Max = float64(len(c.Values)) - 0.5
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	wt, err := p.WriterTo(r.Width, r.Height, format)
	if err != nil {
		return fmt.Errorf("failed to encode chart as %s: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Image is a chart written to disk.
type Image struct {
	Group string
	Path  string
}

// Name is the file name of the image.
func (img Image) Name() string {
	return filepath.Base(img.Path)
}

// Title derives a heading from the file name: the last dot-separated part of
// the stem with underscores turned into spaces.
func (img Image) Title() string {
	stem := strings.TrimSuffix(img.Name(), filepath.Ext(img.Name()))
	parts := strings.Split(stem, ".")
	return strings.ReplaceAll(parts[len(parts)-1], "_", " ")
}

// Ref returns the image path relative to docDir, using forward slashes.
func (img Image) Ref(docDir string) string {
	rel, err := filepath.Rel(docDir, img.Path)
	if err != nil {
		return filepath.ToSlash(img.Path)
	}
	return path.Clean(filepath.ToSlash(rel))
}

// RenderAll writes one chart per group into dir and returns the images
// sorted by file name. A group that fails to render is logged and skipped;
// failing to create dir or write a file is a WriteError.
func RenderAll(fs afero.Fs, dir string, groups []Group, renderer Renderer, format, interpolationMethod string) ([]Image, error) {
	if err := utils.EnsureDir(fs, dir); err != nil {
		return nil, &apperrors.WriteError{Path: dir, Err: err}
	}

	var images []Image
	for _, g := range groups {
		var buf bytes.Buffer
		if err := renderer.Render(&buf, g.Chart(interpolationMethod), format); err != nil {
			telemetry.LogError("Failed to render chart", err, "group", g.Key)
			continue
		}

		out := filepath.Join(dir, g.FileName(format))
		if err := afero.WriteFile(fs, out, buf.Bytes(), 0644); err != nil {
			return images, &apperrors.WriteError{Path: out, Err: err}
		}
		telemetry.LogDebug("Chart rendered", "group", g.Key, "path", out, "bars", len(g.Members))
		images = append(images, Image{Group: g.Key, Path: out})
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].Name() < images[j].Name()
	})
	return images, nil
}
