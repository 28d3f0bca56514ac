// Package render draws the raw and band-pass filtered waveforms with
// gonum/plot and writes them as PNG images.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultWindow is the number of leading samples drawn in each panel.
const DefaultWindow = 500

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("render: no data")

var (
	rawColor      = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	filteredColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Options configures a Figure.
type Options struct {
	Window int     // samples drawn; <= 0 selects DefaultWindow
	LowHz  float64 // band lower edge, used in the filtered legend
	Width  vg.Length
	Height vg.Length
}

func (o Options) normalized() Options {
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	if o.Width <= 0 {
		o.Width = 10 * vg.Inch
	}
	if o.Height <= 0 {
		o.Height = 6 * vg.Inch
	}
	return o
}

// Figure is a vertical stack of plots sharing one canvas.
type Figure struct {
	Panels []*plot.Plot
	Width  vg.Length
	Height vg.Length
}

// Comparison builds the two-panel figure: the raw signal on top and the
// band-pass output in red below, both limited to the first opts.Window samples.
func Comparison(t, raw, filtered []float64, opts Options) (*Figure, error) {
	opts = opts.normalized()

	n := min(len(t), len(raw), len(filtered), opts.Window)
	if n == 0 {
		return nil, ErrNoData
	}

	top, err := waveform(t[:n], raw[:n], "Time Domain: Pre-Filter", "Raw Acoustic Signal", rawColor)
	if err != nil {
		return nil, err
	}

	bottom, err := waveform(t[:n], filtered[:n],
		"Time Domain: Post-Filter (Crepitus Extraction)",
		filteredLabel(opts.LowHz),
		filteredColor)
	if err != nil {
		return nil, err
	}
	bottom.X.Label.Text = "Time (s)"

	return &Figure{Panels: []*plot.Plot{top, bottom}, Width: opts.Width, Height: opts.Height}, nil
}

func filteredLabel(lowHz float64) string {
	return fmt.Sprintf("%gHz Bandpass Output", lowHz)
}

func waveform(t, y []float64, title, legend string, c color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys(t, y))
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", title, err)
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(1)

	p.Add(line)
	p.Legend.Add(legend, line)
	p.Legend.Top = true

	return p, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// WritePNG draws the figure and encodes it as PNG to w.
func (f *Figure) WritePNG(w io.Writer) error {
	if f == nil || len(f.Panels) == 0 {
		return ErrNoData
	}

	img := vgimg.New(f.Width, f.Height)
	dc := draw.New(img)

	rows := make([][]*plot.Plot, len(f.Panels))
	for i, p := range f.Panels {
		rows[i] = []*plot.Plot{p}
	}

	tiles := draw.Tiles{
		Rows:      len(rows),
		Cols:      1,
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(6),
		PadLeft:   vg.Points(6),
		PadRight:  vg.Points(12),
		PadY:      vg.Points(18),
	}

	canvases := plot.Align(rows, tiles, dc)
	for i := range rows {
		rows[i][0].Draw(canvases[i][0])
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the figure to path, replacing any existing file.
func (f *Figure) SavePNG(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	return f.WritePNG(out)
}
