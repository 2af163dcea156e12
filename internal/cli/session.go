package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/cardtally-go/internal/model"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session management commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionOpenCmd())
	cmd.AddCommand(newSessionEndCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new session and select it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			created, err := app.SessionController.Create(cmd.Context(), name)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(sessionView(created))
			return nil
		},
	}
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.SessionController.List(cmd.Context())
			if err != nil {
				return err
			}

			views := make([]Session, 0, len(sessions))
			for _, s := range sessions {
				views = append(views, sessionView(s))
			}

			out := NewOutput(cfg.Output)
			out.Print(SessionList{Sessions: views})
			return nil
		},
	}
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [session]",
		Short: "Show a session (default: the selected one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}

			found, err := resolveSession(cmd.Context(), arg)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(sessionView(found))
			return nil
		},
	}
}

func newSessionOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <session>",
		Short: "Select a session for score entry or review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := resolveSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			state, err := app.SessionController.Open(cmd.Context(), found.ID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(State{
				View:      string(state.View),
				SessionID: string(found.ID),
				Session:   found.Name,
			})
			return nil
		},
	}
}

func newSessionEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end [session]",
		Short: "End a session (default: the selected one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}

			found, err := resolveSession(cmd.Context(), arg)
			if err != nil {
				return err
			}

			ended, err := app.SessionController.End(cmd.Context(), found.ID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(sessionView(ended))
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session>",
		Short: "Delete a session permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := resolveSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := app.SessionController.Delete(cmd.Context(), found.ID); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted session %s", found.Name))
			return nil
		},
	}
}

func newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Clear the session selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.SessionController.GoHome(cmd.Context()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(State{View: string(model.ViewHome)})
			return nil
		},
	}
}
