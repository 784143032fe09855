package render

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

var (
	// ErrNoFrequencies reports an empty preview request.
	ErrNoFrequencies = errors.New("preview needs at least one frequency")
	// ErrFrequencyOutOfRange reports a tone at or above Nyquist, or non-positive.
	ErrFrequencyOutOfRange = errors.New("preview frequency must be positive and below Nyquist")
)

// log2of10 converts decibel exponents to base-2 exponents.
const log2of10 = 3.32192809488736234787

// Renderer synthesizes preview audio from a frequency series.
type Renderer struct {
	sampleRate  float64
	toneSeconds float64
	gapSeconds  float64
	amplitude   float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSampleRate sets the render sample rate in Hz.
func WithSampleRate(rate float64) Option {
	return func(r *Renderer) {
		if rate > 0 {
			r.sampleRate = rate
		}
	}
}

// WithToneDuration sets the duration of each tone in seconds.
func WithToneDuration(seconds float64) Option {
	return func(r *Renderer) {
		if seconds > 0 {
			r.toneSeconds = seconds
		}
	}
}

// WithGapDuration sets the silence between tones in seconds.
func WithGapDuration(seconds float64) Option {
	return func(r *Renderer) {
		if seconds >= 0 {
			r.gapSeconds = seconds
		}
	}
}

// WithAmplitude sets the linear peak amplitude of each tone.
func WithAmplitude(amplitude float64) Option {
	return func(r *Renderer) {
		if amplitude >= 0 {
			r.amplitude = amplitude
		}
	}
}

// WithGainDB sets the tone amplitude as decibels relative to full scale,
// e.g. -6 for half amplitude.
func WithGainDB(db float64) Option {
	return func(r *Renderer) {
		r.amplitude = mathPower2(db / 20 * log2of10)
	}
}

// NewRenderer creates a renderer with 48 kHz, 0.5 s tones, 50 ms gaps and
// -6 dB amplitude unless overridden.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		sampleRate:  48000,
		toneSeconds: 0.5,
		gapSeconds:  0.05,
		amplitude:   0.5,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// SampleRate returns the render sample rate in Hz.
func (r *Renderer) SampleRate() float64 {
	return r.sampleRate
}

// ToneSamples returns the sample count of one tone segment.
func (r *Renderer) ToneSamples() int {
	n := int(r.sampleRate * r.toneSeconds)
	if n < 2 {
		n = 2
	}
	return n
}

// GapSamples returns the sample count of the silence after each tone.
func (r *Renderer) GapSamples() int {
	return int(r.sampleRate * r.gapSeconds)
}

// RenderTone synthesizes one faded sine tone at freqHz.
func (r *Renderer) RenderTone(freqHz float64) ([]float64, error) {
	if freqHz <= 0 || freqHz >= r.sampleRate/2 || math.IsNaN(freqHz) {
		return nil, fmt.Errorf("render: %w: %v at %v Hz", ErrFrequencyOutOfRange, freqHz, r.sampleRate)
	}

	n := r.ToneSamples()
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / r.sampleRate
	for i := range out {
		out[i] = r.amplitude * math.Sin(step*float64(i))
	}

	vecmath.MulBlockInPlace(out, fadeEnvelope(n, r.fadeSamples(n)))
	return out, nil
}

// Render synthesizes all tones, each followed by the configured gap.
func (r *Renderer) Render(freqs []float64) ([]float64, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("render: %w", ErrNoFrequencies)
	}

	toneN, gapN := r.ToneSamples(), r.GapSamples()
	out := make([]float64, 0, len(freqs)*(toneN+gapN))
	for _, f := range freqs {
		tone, err := r.RenderTone(f)
		if err != nil {
			return nil, err
		}
		out = append(out, tone...)
		out = append(out, make([]float64, gapN)...)
	}
	return out, nil
}

// WriteWAV renders freqs and writes the result as 16-bit mono PCM.
func (r *Renderer) WriteWAV(path string, freqs []float64) error {
	samples, err := r.Render(freqs)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer file.Close()

	enc := wav.NewEncoder(file, int(r.sampleRate), 16, 1, 1)

	data := make([]float32, len(samples))
	for i, s := range samples {
		data[i] = float32(s)
	}
	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  int(r.sampleRate),
			NumChannels: 1,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render: finalize %s: %w", path, err)
	}
	return nil
}

// fadeSamples returns the fade length: 10 ms, capped at half the tone.
func (r *Renderer) fadeSamples(toneSamples int) int {
	fade := int(r.sampleRate * 0.01)
	if fade > toneSamples/2 {
		fade = toneSamples / 2
	}
	return fade
}

// fadeEnvelope returns n coefficients: raised-cosine ramps of fade samples
// at both ends, unity in between.
func fadeEnvelope(n, fade int) []float64 {
	env := make([]float64, n)
	for i := range env {
		env[i] = 1
	}
	for i := 0; i < fade; i++ {
		w := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(fade)))
		env[i] *= w
		env[n-1-i] *= w
	}
	return env
}
