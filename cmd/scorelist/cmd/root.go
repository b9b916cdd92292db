package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	verbose   bool
	newLogger func(verbose bool) (*zap.SugaredLogger, error)
	log       *zap.SugaredLogger
}

func newRootCmd(o *rootOptions) *cobra.Command {
	if o.log == nil {
		o.log = zap.NewNop().Sugar()
	}
	cmd := &cobra.Command{
		Use:               "scorelist <command> [flags]",
		Short:             "run scored list scenarios",
		Long:              "scorelist builds lists of scored items from YAML scenarios and runs filters, set operations and valuators against them.",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := o.newLogger(o.verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			o.log = l
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log every step")
	cmd.AddCommand(newRunCmd(o))
	return cmd
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	o := &rootOptions{newLogger: newLogger}
	if err := newRootCmd(o).Execute(); err != nil {
		o.log.Error(err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
