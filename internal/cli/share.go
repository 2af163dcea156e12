package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/cardtally-go/internal/services/share"
	"github.com/mcoot/cardtally-go/internal/services/stats"
)

// DefaultShareBase is the link prefix used for generated share URLs
const DefaultShareBase = "https://cardtally.app/"

func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share and import session results",
	}

	cmd.AddCommand(newShareLinkCmd())
	cmd.AddCommand(newShareImportCmd())

	return cmd
}

func newShareLinkCmd() *cobra.Command {
	var sessionArg string
	var base string

	cmd := &cobra.Command{
		Use:   "link [session]",
		Short: "Produce a share token and link for a session",
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

			token, err := share.Encode(found)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(Share{
				Token: token,
				URL:   share.URL(base, token),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionArg, "session", "", "Session id or name (default: the selected one)")
	cmd.Flags().StringVar(&base, "base", DefaultShareBase, "Base URL for the share link")

	return cmd
}

func newShareImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <token>",
		Short: "Import a shared session for review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imported, err := app.SessionController.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(sessionView(imported))
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var sessionArg string

	cmd := &cobra.Command{
		Use:   "export [session]",
		Short: "Print the leaderboard text for sharing",
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
			out.PrintMessage(stats.FormatLeaderboard(found))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionArg, "session", "", "Session id or name (default: the selected one)")

	return cmd
}
