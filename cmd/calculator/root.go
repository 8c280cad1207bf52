package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/logger"
)

// config holds the settings shared by all commands.
type config struct {
	strict    bool
	digits    int
	echo      bool
	maxDepth  int
	maxLength int
	logLevel  string
	noColor   bool

	// Set up by setup. log discards until then.
	log  *slog.Logger
	opts calculator.CompileOption
}

// setup validates flags and builds the logger and compile options.
func (cfg *config) setup(cmd *cobra.Command) error {
	if cfg.digits < -1 {
		return fmt.Errorf("digits (%d) must be -1 or more", cfg.digits)
	}
	if cfg.maxDepth < 0 {
		return fmt.Errorf("max depth (%d) must not be negative", cfg.maxDepth)
	}
	if cfg.maxLength < 0 {
		return fmt.Errorf("max length (%d) must not be negative", cfg.maxLength)
	}
	log, err := logger.New(cmd.ErrOrStderr(), cfg.logLevel)
	if err != nil {
		return err
	}
	cfg.log = log
	if cfg.noColor {
		color.NoColor = true
	}
	cfg.opts = calculator.CompilePreset(
		calculator.MaxDepth(cfg.maxDepth),
		calculator.MaxLength(cfg.maxLength),
	)
	return nil
}

// evaluate compiles and evaluates one expression according to the config.
func (cfg *config) evaluate(text string) (*calculator.Expr, float64, error) {
	a, err := calculator.Compile(text, cfg.opts)
	if err != nil {
		cfg.log.Debug("compile failed", "input", text, "err", err)
		return nil, 0, err
	}
	cfg.log.Debug("compiled", "input", text, "tree", a.String(), "depth", a.Depth())
	if !cfg.strict {
		return a, a.Eval(), nil
	}
	r, err := a.EvalStrict()
	if err != nil {
		cfg.log.Debug("evaluation failed", "input", text, "err", err)
		return a, 0, err
	}
	return a, r, nil
}

func (cfg *config) format(r float64) string {
	return strconv.FormatFloat(r, 'g', cfg.digits, 64)
}

func newRootCmd() *cobra.Command {
	cfg := &config{log: logger.Discard()}
	root := &cobra.Command{
		Use:   "calculator",
		Short: "Evaluate arithmetic expressions",
		Long: `An interactive arithmetic expression evaluator.

Without a subcommand, calculator reads actions from standard input:
h prints help, o evaluates an operation, and q quits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := shell{cfg: cfg}
			return sh.run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	flags := root.PersistentFlags()
	flags.BoolVar(&cfg.strict, "strict", false, "report division by zero and domain errors instead of printing Inf or NaN")
	flags.IntVar(&cfg.digits, "digits", -1, "significant digits in results (-1 for the fewest that are exact)")
	flags.BoolVar(&cfg.echo, "echo", false, "print parse trees")
	flags.IntVar(&cfg.maxDepth, "max-depth", calculator.DefaultMaxDepth, "maximum nesting of parentheses (0 for no limit)")
	flags.IntVar(&cfg.maxLength, "max-length", calculator.DefaultMaxLength, "maximum expression length in characters (0 for no limit)")
	flags.StringVar(&cfg.logLevel, "log-level", "none", "log level: debug, info, warn, error, or none")
	flags.BoolVar(&cfg.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newEvalCmd(cfg))
	return root
}
