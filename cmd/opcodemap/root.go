package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"opcode-map/internal/common/logging"
	"opcode-map/internal/config"
	"opcode-map/internal/dispatch"
	"opcode-map/internal/parser"
)

type rootOptions struct {
	configPath string
	verbosity  int
	strategy   string

	// set by PersistentPreRunE
	cfg    config.Config
	logger *zap.Logger
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "opcodemap",
		Short: "Dispatch (opcode, subopcode) calls to typed handlers",
		Long: `opcodemap looks up the handlers registered under an (opcode, subopcode) pair
and invokes every one whose parameter list matches the arguments given.
Unknown pairs and argument type mismatches are reported, never fatal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.OutOrStdout())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")
	cmd.PersistentFlags().StringVar(&opts.strategy, "strategy", "", "Matching strategy: all or first (overrides config)")

	cmd.AddCommand(
		newRunCmd(opts),
		newCallCmd(opts),
		newTableCmd(),
	)
	return cmd
}

// setup loads the config and builds a logger on out, the writer handlers
// print to, so diagnostics and handler output form one stream.
func (o *rootOptions) setup(out io.Writer) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.strategy != "" {
		cfg.Strategy = o.strategy
	}
	if _, err := cfg.DispatchStrategy(); err != nil {
		return err
	}

	logger, err := logging.NewLogger("opcodemap", cfg.Log, o.verbosity, out)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logger = logger
	o.logger.Debug("config loaded",
		zap.String("path", o.configPath),
		zap.String("strategy", cfg.Strategy),
	)
	return nil
}

func (o *rootOptions) newParser(cmd *cobra.Command) (*parser.Parser, error) {
	strategy, err := o.cfg.DispatchStrategy()
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	return parser.New(cmd.OutOrStdout(), o.logger, dispatch.WithStrategy(strategy)), nil
}
