// Command retrolm loads a pretrained RetroLM parameter set and opens a
// console session against it.
package main

import (
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/retrolm/retrolm/internal/repl"
	"github.com/retrolm/retrolm/pkg/config"
	"github.com/retrolm/retrolm/pkg/core/errs"
	"github.com/retrolm/retrolm/pkg/core/sampling"
	"github.com/retrolm/retrolm/pkg/logger"
	"github.com/retrolm/retrolm/pkg/weights"
)

func main() {
	cfg, err := config.Load(preScanConfigPath(os.Args[1:]))
	if err != nil {
		logger.Fatal(err)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		if _, ok := err.(*errs.Error); ok {
			logger.Fatal(err)
		}
		logger.Log.Error().Err(err).Msg("command failed")
		os.Exit(errs.ExitCode(err))
	}
}

// preScanConfigPath extracts --config from argv before the real flag set
// is built, so its value can seed that flag set's defaults. Unknown
// flags and parse errors are ignored here; the real cobra command parses
// (and validates) everything properly on the next pass.
func preScanConfigPath(args []string) string {
	fs := pflag.NewFlagSet("retrolm-config-prescan", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var (
		configPath  string
		weightsDir  string
		temperature float32
		seed        int64
		maxTokens   int
		useWallTime bool
	)

	cmd := &cobra.Command{
		Use:   "retrolm",
		Short: "Run a single-layer causal transformer decoder from a weight directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := weights.Load(weightsDir)
			if err != nil {
				return err
			}

			if useWallTime {
				seed = time.Now().UnixNano()
			}
			sampler := sampling.New(seed)

			p := tea.NewProgram(repl.New(repl.Config{
				Params:      params,
				Sampler:     sampler,
				MaxTokens:   maxTokens,
				Temperature: temperature,
			}), tea.WithAltScreen())

			_, err = p.Run()
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "optional YAML file supplying defaults for the flags below")
	flags.StringVar(&weightsDir, "weights", cfg.WeightsDir, "directory containing the weight files")
	flags.Float32Var(&temperature, "temperature", cfg.Temperature, "sampling temperature")
	flags.Int64Var(&seed, "seed", cfg.Seed, "PRNG seed; ignored if --wall-clock-seed is set")
	flags.IntVar(&maxTokens, "max-tokens", cfg.MaxTokens, "maximum tokens to decode per turn")
	flags.BoolVar(&useWallTime, "wall-clock-seed", cfg.WallClockSeed, "seed the PRNG from wall-clock time at startup")

	return cmd
}
