package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rvogel/kaufmiete/internal/calculation"
	"github.com/rvogel/kaufmiete/internal/config"
	"github.com/rvogel/kaufmiete/internal/domain"
	"github.com/rvogel/kaufmiete/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// zerologAdapter satisfies calculation.Logger on top of zerolog.
type zerologAdapter struct {
	log zerolog.Logger
}

func (a zerologAdapter) Debugf(format string, args ...any) { a.log.Debug().Msgf(format, args...) }
func (a zerologAdapter) Infof(format string, args ...any)  { a.log.Info().Msgf(format, args...) }
func (a zerologAdapter) Warnf(format string, args ...any)  { a.log.Warn().Msgf(format, args...) }
func (a zerologAdapter) Errorf(format string, args ...any) { a.log.Error().Msgf(format, args...) }

var rootCmd = &cobra.Command{
	Use:   "kaufmiete",
	Short: "Swiss buy-vs-rent calculator",
	Long: `kaufmiete answers one question for a Swiss household: over a chosen
horizon, is it cheaper to buy a specific property or to keep renting a
comparable one and invest the capital instead?`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the buy-vs-rent calculation for a parameter file",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, _ := cmd.Flags().GetString("input")
		format, _ := cmd.Flags().GetString("format")

		params, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		engine := newEngine()
		result, err := engine.Calculate(params)
		if err != nil {
			return err
		}

		switch format {
		case "console":
			fmt.Print(output.ConsoleReport(result))
		case "json":
			data, err := output.JSONReport(result)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		case "csv":
			s, err := output.ResultCSV(result)
			if err != nil {
				return err
			}
			fmt.Print(s)
		case "ledger-csv":
			s, err := output.LedgerCSV(result)
			if err != nil {
				return err
			}
			fmt.Print(s)
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
		return nil
	},
}

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Binary-search the purchase price at which buying and renting break even",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, _ := cmd.Flags().GetString("input")
		minPrice, _ := cmd.Flags().GetFloat64("min")
		maxPrice, _ := cmd.Flags().GetFloat64("max")
		tolerance, _ := cmd.Flags().GetFloat64("tolerance")
		maxIterations, _ := cmd.Flags().GetInt("max-iterations")
		format, _ := cmd.Flags().GetString("format")

		params, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		opts := domain.BreakEvenOptions{
			MinPrice:      decimal.NewFromFloat(minPrice),
			MaxPrice:      decimal.NewFromFloat(maxPrice),
			Tolerance:     decimal.NewFromFloat(tolerance),
			MaxIterations: maxIterations,
		}
		if cmd.Flags().Changed("mortgage") {
			mortgage, _ := cmd.Flags().GetFloat64("mortgage")
			m := decimal.NewFromFloat(mortgage)
			opts.MortgageAmount = &m
		}

		engine := newEngine()
		be, err := engine.FindBreakevenPrice(params, opts)
		if err != nil {
			return err
		}

		switch format {
		case "console":
			fmt.Print(output.BreakEvenReport(be))
		case "json":
			data, err := jsonIndent(be)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the calculation over one or more parameter axes",
	Long: `Sweep enumerates the cartesian product of the given axes and runs the
calculation for every combination. Axes are given as
--axis name=min:max:step and may be repeated; postReform uses 0:1:1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, _ := cmd.Flags().GetString("input")
		axisSpecs, _ := cmd.Flags().GetStringArray("axis")
		format, _ := cmd.Flags().GetString("format")

		params, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		ranges := make(map[string]domain.SweepRange, len(axisSpecs))
		for _, spec := range axisSpecs {
			name, r, err := parseAxisSpec(spec)
			if err != nil {
				return err
			}
			ranges[name] = r
		}

		engine := newEngine()
		records, err := engine.ParameterSweep(params, ranges)
		if err != nil {
			return err
		}
		logger.Info().Int("combinations", len(records)).Msg("sweep complete")

		switch format {
		case "csv":
			s, err := output.SweepCSV(records)
			if err != nil {
				return err
			}
			fmt.Print(s)
		case "json":
			data, err := jsonIndent(records)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "kaufmiete %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	engine.SetLogger(zerologAdapter{log: logger})
	return engine
}

// parseAxisSpec parses "name=min:max:step" into an axis.
func parseAxisSpec(spec string) (string, domain.SweepRange, error) {
	name, rangeSpec, ok := strings.Cut(spec, "=")
	if !ok {
		return "", domain.SweepRange{}, fmt.Errorf("invalid axis %q: expected name=min:max:step", spec)
	}
	parts := strings.Split(rangeSpec, ":")
	if len(parts) != 3 {
		return "", domain.SweepRange{}, fmt.Errorf("invalid axis %q: expected name=min:max:step", spec)
	}

	var values [3]decimal.Decimal
	for i, part := range parts {
		v, err := decimal.NewFromString(part)
		if err != nil {
			return "", domain.SweepRange{}, fmt.Errorf("invalid axis %q: %w", spec, err)
		}
		values[i] = v
	}

	return name, domain.SweepRange{Min: values[0], Max: values[1], Step: values[2]}, nil
}

func jsonIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose (debug) logging")

	calculateCmd.Flags().StringP("input", "i", "", "Parameter file (YAML)")
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, ledger-csv)")
	_ = calculateCmd.MarkFlagRequired("input")

	breakevenCmd.Flags().StringP("input", "i", "", "Parameter file (YAML)")
	breakevenCmd.Flags().Float64("min", 0, "Lower bound of the price search")
	breakevenCmd.Flags().Float64("max", 0, "Upper bound of the price search")
	breakevenCmd.Flags().Float64("tolerance", 1000, "Result tolerance for break-even")
	breakevenCmd.Flags().Int("max-iterations", 64, "Maximum number of probes")
	breakevenCmd.Flags().Float64("mortgage", 0, "Fixed mortgage amount across probes")
	breakevenCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	_ = breakevenCmd.MarkFlagRequired("input")
	_ = breakevenCmd.MarkFlagRequired("min")
	_ = breakevenCmd.MarkFlagRequired("max")

	sweepCmd.Flags().StringP("input", "i", "", "Parameter file (YAML)")
	sweepCmd.Flags().StringArray("axis", nil, "Sweep axis as name=min:max:step (repeatable)")
	sweepCmd.Flags().StringP("format", "f", "csv", "Output format (csv, json)")
	_ = sweepCmd.MarkFlagRequired("input")
	_ = sweepCmd.MarkFlagRequired("axis")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(breakevenCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
