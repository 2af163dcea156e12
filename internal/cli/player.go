package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerRemoveCmd())
	cmd.AddCommand(newPlayerAvatarCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var sessionArg string

	cmd := &cobra.Command{
		Use:   "add <name>...",
		Short: "Add players to the selected session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := resolveSession(cmd.Context(), sessionArg)
			if err != nil {
				return err
			}

			updated := found
			for _, name := range args {
				updated, err = app.SessionController.AddPlayer(cmd.Context(), found.ID, name)
				if err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output)
			out.Print(sessionView(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionArg, "session", "", "Session id or name (default: the selected one)")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	var sessionArg string

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a player and their scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := resolveSession(cmd.Context(), sessionArg)
			if err != nil {
				return err
			}

			player, err := resolvePlayer(found, args[0])
			if err != nil {
				return err
			}

			updated, err := app.SessionController.RemovePlayer(cmd.Context(), found.ID, player.ID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(sessionView(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionArg, "session", "", "Session id or name (default: the selected one)")

	return cmd
}

func newPlayerAvatarCmd() *cobra.Command {
	var sessionArg string

	cmd := &cobra.Command{
		Use:   "avatar <name> <emoji>",
		Short: "Change a player's avatar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := resolveSession(cmd.Context(), sessionArg)
			if err != nil {
				return err
			}

			player, err := resolvePlayer(found, args[0])
			if err != nil {
				return err
			}

			updated, err := app.SessionController.ChangeAvatar(cmd.Context(), found.ID, player.ID, args[1])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(sessionView(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionArg, "session", "", "Session id or name (default: the selected one)")

	return cmd
}
