package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var sessionArg string

	cmd := &cobra.Command{
		Use:   "stats [session]",
		Short: "Show streaks and running totals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := sessionArg
			if len(args) > 0 {
				arg = args[0]
			}

			found, err := resolveSession(cmd.Context(), arg)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(statsView(found))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionArg, "session", "", "Session id or name (default: the selected one)")

	return cmd
}
