package render

import (
	"fmt"

	"github.com/cwbudde/algo-crepitus/dsp/core"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// psdFloorDB replaces -Inf levels of empty bins.
const psdFloorDB = -200.0

// Spectrum builds a single-panel figure of a power spectral density in dB.
// lowHz and highHz mark the pass band with vertical lines when highHz > lowHz.
func Spectrum(freqs, psd []float64, lowHz, highHz float64, opts Options) (*Figure, error) {
	opts = opts.normalized()

	n := min(len(freqs), len(psd))
	if n == 0 {
		return nil, ErrNoData
	}

	pts := make(plotter.XYs, n)
	for i := range pts {
		db := core.LinearPowerToDB(psd[i])
		if !core.IsFinite(db) {
			db = psdFloorDB
		}
		pts[i].X = freqs[i]
		pts[i].Y = db
	}

	p := plot.New()
	p.Title.Text = "Filtered Signal: Welch PSD"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Power (dB/Hz)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("render: spectrum: %w", err)
	}
	line.LineStyle.Color = filteredColor
	line.LineStyle.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("PSD", line)
	p.Legend.Top = true

	if highHz > lowHz {
		for _, edge := range []float64{lowHz, highHz} {
			marker, err := plotter.NewLine(plotter.XYs{{X: edge, Y: p.Y.Min}, {X: edge, Y: p.Y.Max}})
			if err != nil {
				return nil, fmt.Errorf("render: spectrum: %w", err)
			}
			marker.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			p.Add(marker)
		}
	}

	return &Figure{Panels: []*plot.Plot{p}, Width: opts.Width, Height: opts.Height}, nil
}
