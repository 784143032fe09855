// Command pipecalc calculates the specs for a set of equal tempered pipes
// starting at a given lowest frequency. Lengths are printed in centimeters.
// A modality can be supplied as a list of chromatic steps together with the
// tonal index of the lowest pipe.
//
// Usage:
//
//	pipecalc [flags]
//	pipecalc preview [flags] -out pipes.wav
//
// Examples:
//
//	pipecalc
//	pipecalc -f 440 -n 25 -x
//	pipecalc -D -i 6 -n 8 --notes
//	pipecalc -m 2,1,2,2,1,2,2 -p 1.5 -d 2.2
//	pipecalc preview -D -n 8 -out scale.wav -verify
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-pipes/pipe"
	"github.com/cwbudde/algo-pipes/render"
	"github.com/cwbudde/algo-pipes/report"
)

var rootCmd = &cobra.Command{
	Use:   "pipecalc",
	Short: "Calculate lengths for a rank of equal tempered pipes",
	Long: `pipecalc calculates the specs for a set of equal tempered pipes in a
chromatic scale starting at a given lowest frequency and continuing for a
given number of steps. The speed of sound can also be specified in meters
per second. The lengths of the pipes are given in centimeters. A modality
can be specified by providing a list of steps as well as the index (with 1
being the root) of the lowest pipe.`,
	RunE:          runReport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the rank as an audible WAV preview",
	RunE:  runPreview,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64P("fundamental", "f", 261.6255653005987,
		"frequency in Hz of the lowest note (middle C by default)")
	pf.IntP("step", "s", 12, "number of chromatic steps per octave")
	pf.IntP("numpipes", "n", 13, "number of pipes to calculate")
	pf.Float64P("velocity", "v", 343, "speed of sound in meters per second")
	pf.IntSliceP("mode", "m", nil,
		"sequence of chromatic steps making up a scale (e.g. 2,2,1,2,2,2,1); chromatic by default")
	pf.BoolP("diatonic", "D", false,
		"shorthand for mode 2,2,1,2,2,2,1; an explicit mode overrides this")
	pf.IntP("index", "i", 1, "tonal index of the lowest pipe (1 is the root)")
	pf.Float64P("plug", "p", 0, "depth in cm of the plug stopping the tubes")
	pf.Float64P("diameter", "d", 0, "tube diameter in cm, for the open-end correction")
	pf.Bool("debug", false, "enable debug logging")

	rootCmd.Flags().IntP("round", "r", 2, "digits past the decimal point for lengths")
	rootCmd.Flags().BoolP("extra", "x", false, "also show the frequency of each pipe")
	rootCmd.Flags().Bool("notes", false, "also show the nearest note name of each pipe")

	previewCmd.Flags().String("out", "pipes.wav", "output WAV file path")
	previewCmd.Flags().Float64("rate", 48000, "render sample rate in Hz")
	previewCmd.Flags().Float64("tone", 0.5, "tone duration in seconds")
	previewCmd.Flags().Float64("gap", 0.05, "gap between tones in seconds")
	previewCmd.Flags().Float64("gain", -6, "tone level in dBFS")
	previewCmd.Flags().Bool("verify", false, "spectrally verify each rendered tone")

	rootCmd.AddCommand(previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pipecalc: %v\n", err)
		os.Exit(1)
	}
}

// initLogger configures the process-wide slog handler.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// configFromFlags collects the shared calculation parameters.
func configFromFlags(cmd *cobra.Command) (pipe.Config, error) {
	cfg := pipe.Config{}
	flags := cmd.Flags()

	var err error
	if cfg.Fundamental, err = flags.GetFloat64("fundamental"); err != nil {
		return pipe.Config{}, err
	}
	if cfg.StepsPerOctave, err = flags.GetInt("step"); err != nil {
		return pipe.Config{}, err
	}
	if cfg.PipeCount, err = flags.GetInt("numpipes"); err != nil {
		return pipe.Config{}, err
	}
	if cfg.SpeedOfSound, err = flags.GetFloat64("velocity"); err != nil {
		return pipe.Config{}, err
	}
	mode, err := flags.GetIntSlice("mode")
	if err != nil {
		return pipe.Config{}, err
	}
	if len(mode) > 0 {
		cfg.Steps = mode
	}
	if cfg.Diatonic, err = flags.GetBool("diatonic"); err != nil {
		return pipe.Config{}, err
	}
	if cfg.RootIndex, err = flags.GetInt("index"); err != nil {
		return pipe.Config{}, err
	}
	if cfg.PlugDepthCm, err = flags.GetFloat64("plug"); err != nil {
		return pipe.Config{}, err
	}
	if cfg.DiameterCm, err = flags.GetFloat64("diameter"); err != nil {
		return pipe.Config{}, err
	}

	debug, err := flags.GetBool("debug")
	if err != nil {
		return pipe.Config{}, err
	}
	initLogger(debug)

	return cfg, nil
}

// compute runs the pass and emits the pattern-sum advisory.
func compute(cfg pipe.Config) (pipe.Result, error) {
	res, err := pipe.Compute(cfg)
	if err != nil {
		return pipe.Result{}, err
	}
	if !res.SumMatches {
		slog.Warn("the steps in your mode don't add up to an octave; these results might not make sense",
			"sum", res.PatternSum, "steps_per_octave", cfg.StepsPerOctave)
	}
	return res, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	res, err := compute(cfg)
	if err != nil {
		return err
	}

	precision, err := cmd.Flags().GetInt("round")
	if err != nil {
		return err
	}
	extra, err := cmd.Flags().GetBool("extra")
	if err != nil {
		return err
	}
	notes, err := cmd.Flags().GetBool("notes")
	if err != nil {
		return err
	}

	f := report.Formatter{Precision: precision, ShowFrequency: extra, ShowNotes: notes}
	return f.Render(cmd.OutOrStdout(), res.Pipes)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	res, err := compute(cfg)
	if err != nil {
		return err
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	rate, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return err
	}
	tone, err := cmd.Flags().GetFloat64("tone")
	if err != nil {
		return err
	}
	gap, err := cmd.Flags().GetFloat64("gap")
	if err != nil {
		return err
	}
	gain, err := cmd.Flags().GetFloat64("gain")
	if err != nil {
		return err
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return err
	}

	freqs := make([]float64, len(res.Pipes))
	for i, p := range res.Pipes {
		freqs[i] = p.FrequencyHz
	}

	r := render.NewRenderer(
		render.WithSampleRate(rate),
		render.WithToneDuration(tone),
		render.WithGapDuration(gap),
		render.WithGainDB(gain),
	)

	if verify {
		if err := verifyTones(r, freqs); err != nil {
			return err
		}
	}

	if err := r.WriteWAV(out, freqs); err != nil {
		return err
	}
	slog.Info("preview written", "path", out, "pipes", len(freqs))
	return nil
}

// verifyTones renders each tone separately and checks that its dominant
// spectral component sits within one percent of the requested frequency.
func verifyTones(r *render.Renderer, freqs []float64) error {
	for i, want := range freqs {
		tone, err := r.RenderTone(want)
		if err != nil {
			return err
		}
		got, err := render.DominantFrequency(tone, r.SampleRate())
		if err != nil {
			return err
		}
		slog.Debug("verified tone", "pipe", i, "want_hz", want, "got_hz", got)
		if got < want*0.99 || got > want*1.01 {
			return fmt.Errorf("pipe %d: rendered %.2f Hz, want %.2f Hz", i, got, want)
		}
	}
	return nil
}
