package pipeline

import (
	"fmt"

	"github.com/cwbudde/algo-crepitus/dsp/core"
	"github.com/cwbudde/algo-crepitus/dsp/filter/bandpass"
	"github.com/cwbudde/algo-crepitus/dsp/filter/biquad"
	"github.com/cwbudde/algo-crepitus/dsp/signal"
	"github.com/cwbudde/algo-crepitus/dsp/spectrum"
	"github.com/cwbudde/algo-crepitus/internal/render"
	"github.com/cwbudde/algo-crepitus/internal/wavio"
	"github.com/cwbudde/algo-crepitus/measure/crepitus"
	statstime "github.com/cwbudde/algo-crepitus/stats/time"
	"go.uber.org/zap"
)

// Result is the output of one detector run.
type Result struct {
	SampleRate float64
	Time       []float64
	Raw        []float64
	Filtered   []float64
	Sections   []biquad.Coefficients

	// Score is the crepitus index in percent.
	Score    float64
	Analysis crepitus.Result
}

// Option configures a Runner.
type Option func(*Runner)

// WithFilter replaces the Butterworth band-pass design.
func WithFilter(f bandpass.Filter) Option {
	return func(r *Runner) {
		if f != nil {
			r.filter = f
		}
	}
}

// WithViewer replaces the function that opens the saved plot.
func WithViewer(show func(path string) error) Option {
	return func(r *Runner) {
		if show != nil {
			r.show = show
		}
	}
}

// Runner executes the detector stages for one Config.
type Runner struct {
	cfg    Config
	logger *zap.Logger
	filter bandpass.Filter
	show   func(path string) error
}

// NewRunner validates cfg and returns a Runner. A nil logger disables logging.
func NewRunner(cfg Config, logger *zap.Logger, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Runner{
		cfg:    cfg,
		logger: logger,
		filter: bandpass.Butterworth{},
		show:   render.Show,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Run is a one-shot NewRunner followed by Runner.Run.
func Run(cfg Config, logger *zap.Logger, opts ...Option) (Result, error) {
	r, err := NewRunner(cfg, logger, opts...)
	if err != nil {
		return Result{}, err
	}
	return r.Run()
}

// Run scores one signal and then renders it. A rendering error is returned
// together with the scored Result.
func (r *Runner) Run() (Result, error) {
	res, err := r.Score()
	if err != nil {
		return Result{}, err
	}
	return res, r.Render(res)
}

// Score acquires, filters and scores one signal without touching the
// filesystem beyond the optional input recording.
func (r *Runner) Score() (Result, error) {
	res, err := r.acquire()
	if err != nil {
		return Result{}, err
	}
	r.logSignal("raw signal", res.Raw)

	spec := r.cfg.FilterSpec(res.SampleRate)
	res.Sections, err = r.filter.Design(spec)
	if err != nil {
		return Result{}, err
	}
	res.Filtered = r.filter.Apply(res.Sections, res.Raw)
	r.logDesign(spec, res.Sections)
	r.logSignal("filtered signal", res.Filtered)

	res.Score = crepitus.Index(res.Raw, res.Filtered)
	res.Analysis, err = crepitus.Analyze(res.Raw, res.Filtered, crepitus.Options{
		SampleRate: res.SampleRate,
		LowHz:      spec.LowHz,
		HighHz:     spec.HighHz,
	})
	if err != nil {
		return Result{}, err
	}
	r.logger.Info("crepitus index",
		zap.Float64("score_pct", res.Score),
		zap.Float64("raw_tone", res.Analysis.RawTone),
		zap.Float64("filtered_tone", res.Analysis.FilteredTone),
		zap.Float64("band_fraction", res.Analysis.BandFraction),
		zap.Float64("peak_hz", res.Analysis.PeakHz))

	return res, nil
}

func (r *Runner) acquire() (Result, error) {
	if r.cfg.InputPath != "" {
		return r.load()
	}

	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(r.cfg.SampleRate)},
		signal.WithSeed(r.cfg.Seed),
	)
	syn, err := g.Synthesize(signal.SynthConfig{
		Duration:      r.cfg.Duration,
		ToneHz:        r.cfg.ToneHz,
		ToneAmplitude: r.cfg.ToneAmplitude,
		NoiseMean:     r.cfg.NoiseMean,
		NoiseSigma:    r.cfg.NoiseSigma,
	})
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: synthesize: %w", err)
	}

	r.logger.Debug("synthesized signal",
		zap.Int64("seed", r.cfg.Seed),
		zap.Float64("sample_rate", r.cfg.SampleRate),
		zap.Int("samples", len(syn.Raw)))

	return Result{SampleRate: r.cfg.SampleRate, Time: syn.Time, Raw: syn.Raw}, nil
}

func (r *Runner) load() (Result, error) {
	rec, err := wavio.Load(r.cfg.InputPath)
	if err != nil {
		return Result{}, err
	}
	if len(rec.Samples) == 0 {
		return Result{}, fmt.Errorf("%w: %s has no samples", wavio.ErrInvalidWAV, r.cfg.InputPath)
	}

	t, err := signal.NewGenerator(core.WithSampleRate(rec.SampleRate)).TimeAxis(len(rec.Samples))
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	r.logger.Debug("loaded recording",
		zap.String("path", r.cfg.InputPath),
		zap.Float64("sample_rate", rec.SampleRate),
		zap.Int("bit_depth", rec.BitDepth),
		zap.Float64("duration_s", rec.Duration()))

	return Result{SampleRate: rec.SampleRate, Time: t, Raw: rec.Samples}, nil
}

func (r *Runner) logDesign(spec bandpass.Spec, sections []biquad.Coefficients) {
	if !r.logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	chain := biquad.NewChain(sections)
	r.logger.Debug("band-pass designed",
		zap.Int("order", spec.Order),
		zap.Float64("low_hz", spec.LowHz),
		zap.Float64("high_hz", spec.HighHz),
		zap.Int("sections", len(sections)),
		zap.Bool("stable", chain.Stable()),
		zap.Float64("center_db", chain.MagnitudeDB(spec.Center(), spec.SampleRate)),
		zap.Float64("low_edge_db", chain.MagnitudeDB(spec.LowHz, spec.SampleRate)),
		zap.Float64("high_edge_db", chain.MagnitudeDB(spec.HighHz, spec.SampleRate)))
}

func (r *Runner) logSignal(msg string, x []float64) {
	if !r.logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	s := statstime.Calculate(x)
	r.logger.Debug(msg,
		zap.Int("samples", s.Length),
		zap.Float64("dc", s.DC),
		zap.Float64("rms", s.RMS),
		zap.Float64("peak", s.Peak),
		zap.Float64("crest_db", s.CrestFactor_dB))
}

// Render writes the configured plots and, when Show is set, opens the
// comparison plot in the viewer.
func (r *Runner) Render(res Result) error {
	opts := render.Options{Window: r.cfg.PlotWindow, LowHz: r.cfg.LowHz}

	if r.cfg.PlotPath != "" {
		fig, err := render.Comparison(res.Time, res.Raw, res.Filtered, opts)
		if err != nil {
			return err
		}
		if err := fig.SavePNG(r.cfg.PlotPath); err != nil {
			return err
		}
		r.logger.Info("plot written", zap.String("path", r.cfg.PlotPath))
	}

	if r.cfg.PSDPath != "" {
		psd, err := spectrum.Welch(res.Filtered, res.SampleRate, 0)
		if err != nil {
			return fmt.Errorf("pipeline: psd: %w", err)
		}
		fig, err := render.Spectrum(psd.Freqs, psd.Power, r.cfg.LowHz, r.cfg.HighHz, opts)
		if err != nil {
			return err
		}
		if err := fig.SavePNG(r.cfg.PSDPath); err != nil {
			return err
		}
		r.logger.Info("psd written", zap.String("path", r.cfg.PSDPath))
	}

	if r.cfg.Show && r.cfg.PlotPath != "" {
		if err := r.show(r.cfg.PlotPath); err != nil {
			return err
		}
		r.logger.Debug("viewer started", zap.String("path", r.cfg.PlotPath))
	}
	return nil
}
