package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Preference flag commands",
	}

	cmd.AddCommand(newPrefsGetCmd())
	cmd.AddCommand(newPrefsSetCmd())

	return cmd
}

func newPrefsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Read a preference flag (unset reads as off)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := app.Storage.GetPreference(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(Preference{Key: args[0], Enabled: enabled})
			return nil
		},
	}
}

func newPrefsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <on|off>",
		Short: "Set a preference flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[1] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				parsed, err := strconv.ParseBool(args[1])
				if err != nil {
					return fmt.Errorf("expected on, off, true or false, got %q", args[1])
				}
				enabled = parsed
			}

			if err := app.Storage.SetPreference(cmd.Context(), args[0], enabled); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(Preference{Key: args[0], Enabled: enabled})
			return nil
		},
	}
}
