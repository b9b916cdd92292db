package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ddirect/scorelist/internal/scenario"
)

func newRunCmd(o *rootOptions) *cobra.Command {
	var continueOnError bool

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "run scenario files in order, sharing their lists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := scenario.NewRunner(cmd.OutOrStdout(), o.log)
			for _, path := range args {
				s, err := scenario.Load(path)
				if err != nil {
					return err
				}
				if continueOnError {
					s.ContinueOnError = true
				}
				o.log.Debugw("running scenario", "path", path, "lists", len(s.Lists), "steps", len(s.Steps))
				if err := r.Run(s); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "keep running steps after a failure")
	return cmd
}
