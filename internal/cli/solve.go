package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/emwalker/valvenet/parse"
	"github.com/emwalker/valvenet/pressure"
)

// tuning mirrors the optional TOML file accepted by --config. Every field is
// optional; unset fields keep the flag (or default) value.
type tuning struct {
	Minutes       *int     `toml:"minutes"`
	HelperMinutes *int     `toml:"helper_minutes"`
	Start         *string  `toml:"start"`
	PruneFactor   *float64 `toml:"prune_factor"`
	ExactPairing  *int     `toml:"exact_pairing"`
}

// solveParams collects everything the solve command needs after flag and
// config resolution.
type solveParams struct {
	minutes       int
	helperMinutes int
	opts          pressure.Options
}

// applyTuning overlays the config file values onto p.
func (p *solveParams) applyTuning(t tuning) {
	if t.Minutes != nil {
		p.minutes = *t.Minutes
	}
	if t.HelperMinutes != nil {
		p.helperMinutes = *t.HelperMinutes
	}
	if t.Start != nil {
		p.opts.StartValve = *t.Start
	}
	if t.PruneFactor != nil {
		p.opts.PruneFactor = *t.PruneFactor
	}
	if t.ExactPairing != nil {
		p.opts.ExactPairing = *t.ExactPairing
	}
}

func newSolveCmd() *cobra.Command {
	var (
		minutes       int
		helperMinutes int
		start         string
		pruneFactor   float64
		configPath    string
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Compute optimal pressure release for a valve network",
		Long: `Solve reads valve descriptions ("Valve AA has flow rate=0; tunnels lead
to valves DD, II, BB") from a file, or stdin when no file is given, and
prints two integers: the single-agent optimum and the two-agent optimum.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			input, err := readInput(args)
			if err != nil {
				return err
			}

			p := solveParams{
				minutes:       minutes,
				helperMinutes: helperMinutes,
				opts:          pressure.DefaultOptions(),
			}
			p.opts.StartValve = start
			p.opts.PruneFactor = pruneFactor
			if configPath != "" {
				var t tuning
				if _, err = toml.DecodeFile(configPath, &t); err != nil {
					return fmt.Errorf("reading %s: %w", configPath, err)
				}
				p.applyTuning(t)
				logger.Debugf("applied tuning from %s", configPath)
			}

			records, err := parse.Records(input)
			if err != nil {
				return err
			}
			logger.Debugf("parsed %d valves", len(records))

			track := newProgress(logger)
			single, err := pressure.MaxPressure(records, p.minutes, p.opts)
			if err != nil {
				return err
			}
			track.done("single agent: %d over %d minutes", single, p.minutes)

			track = newProgress(logger)
			pair, err := pressure.MaxPressureWithHelper(records, p.helperMinutes, p.opts)
			if err != nil {
				return err
			}
			track.done("two agents: %d over %d minutes", pair, p.helperMinutes)

			fmt.Fprintf(cmd.OutOrStdout(), "%d\n%d\n", single, pair)

			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 30, "time budget for the single-agent search")
	cmd.Flags().IntVar(&helperMinutes, "helper-minutes", 26, "time budget for the two-agent search")
	cmd.Flags().StringVar(&start, "start", "AA", "name of the start valve")
	cmd.Flags().Float64Var(&pruneFactor, "prune-factor", 0.75, "loose-prune threshold for the two-agent table fill (0 disables)")
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML tuning file")

	return cmd
}

// readInput returns the contents of args[0], or stdin when no argument was
// given.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
