package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/cardtally-go/internal/model"
	"github.com/mcoot/cardtally-go/internal/services/score"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score entry commands",
	}

	cmd.AddCommand(newScoreAddCmd())
	cmd.AddCommand(newScoreUndoCmd())

	return cmd
}

func newScoreAddCmd() *cobra.Command {
	var sessionArg string

	cmd := &cobra.Command{
		Use:   "add <name=amount>...",
		Short: "Apply one round of score changes",
		Long: `Apply one round of score changes to the selected session.

Each argument pairs a player name with that player's score change for
the round, e.g. 'score add alice=20 bob=-20'. Players not listed are
unchanged. One malformed amount rejects the whole round.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := resolveSession(cmd.Context(), sessionArg)
			if err != nil {
				return err
			}

			deltas := make(map[model.PlayerID]int, len(args))
			for _, arg := range args {
				name, amount, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected name=amount, got %q", arg)
				}
				player, err := resolvePlayer(found, name)
				if err != nil {
					return fmt.Errorf("unknown player %q", name)
				}
				if !score.AcceptText(amount) {
					return fmt.Errorf("invalid amount %q for %s", amount, name)
				}
				deltas[player.ID] = score.ParseAmount(amount)
			}

			updated, changed, err := app.ScoreController.ApplyRound(cmd.Context(), found.ID, deltas)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if !changed {
				out.PrintMessage("No change")
				return nil
			}
			out.Print(sessionView(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionArg, "session", "", "Session id or name (default: the selected one)")

	return cmd
}

func newScoreUndoCmd() *cobra.Command {
	var sessionArg string

	cmd := &cobra.Command{
		Use:   "undo <name>",
		Short: "Undo a player's most recent score entry",
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

			updated, changed, err := app.ScoreController.UndoLast(cmd.Context(), found.ID, player.ID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if !changed {
				out.PrintMessage(fmt.Sprintf("%s has no entries to undo", player.Name))
				return nil
			}
			out.Print(sessionView(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionArg, "session", "", "Session id or name (default: the selected one)")

	return cmd
}
