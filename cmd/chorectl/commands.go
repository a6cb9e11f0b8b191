package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"choreboard/client/dashboard"
	choreDto "choreboard/internal/domains/chore/model/dto"
	gDto "choreboard/shared/dto"

	"github.com/spf13/cobra"
)

type app struct {
	cfg    Config
	out    io.Writer
	client *dashboard.Client
}

func rootCmd(cfg Config, out io.Writer) *cobra.Command {
	a := &app{cfg: cfg, out: out}

	cmd := &cobra.Command{
		Use:           "chorectl",
		Short:         "Household chore dashboard client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfg.BaseURL, "url", cfg.BaseURL, "Server base URL")
	cmd.PersistentFlags().StringVar(&a.cfg.Token, "token", cfg.Token, "Access token; logs in with CHORECTL_EMAIL and CHORECTL_PASSWORD when empty")

	cmd.AddCommand(
		a.loginCmd(),
		a.dashboardCmd(),
		a.listCmd(),
		a.choreCmd(),
		a.logoutCmd(),
	)

	return cmd
}

// connect builds the client and, without a token, signs in with the configured credentials.
func (a *app) connect(ctx context.Context) error {
	a.client = dashboard.New(a.cfg.BaseURL, dashboard.NewTerminalView(a.out),
		dashboard.WithHTTPClient(&http.Client{Timeout: a.cfg.Timeout}),
		dashboard.WithRetryPolicy(a.cfg.retryPolicy()),
		dashboard.WithToken(a.cfg.Token),
	)

	if a.cfg.Token != "" || a.cfg.Email == "" {
		return nil
	}

	_, err := a.client.Login(ctx, a.cfg.Email, a.cfg.Password)

	return err
}

func (a *app) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Print an access token for CHORECTL_TOKEN",
		RunE: func(_ *cobra.Command, _ []string) error {
			if a.client.Token() == "" {
				return fmt.Errorf("set CHORECTL_EMAIL and CHORECTL_PASSWORD to log in")
			}

			_, err := fmt.Fprintln(a.out, a.client.Token())

			return err
		},
	}
}

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ls"},
		Short:   "Show lists and chores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := a.client.Load(cmd.Context())

			return err
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "list", Short: "Manage lists"}

	cmd.AddCommand(&cobra.Command{
		Use:   "create NAME",
		Short: "Create a list and refresh the dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.client.SubmitList(cmd.Context(), dashboard.ListForm{ListName: args[0]})

			return err
		},
	}, &cobra.Command{
		Use:   "show ID",
		Short: "Show the chores of one list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			_, err = a.client.LoadList(cmd.Context(), id)

			return err
		},
	})

	return cmd
}

func (a *app) choreCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "chore", Short: "Manage chores"}

	cmd.AddCommand(
		a.choreCreateCmd(),
		a.choreShowCmd(),
		a.choreEditCmd(),
		a.choreCompleteCmd(),
		a.choreDeleteCmd(),
	)

	return cmd
}

func (a *app) choreCreateCmd() *cobra.Command {
	var form dashboard.ChoreForm

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a chore and refresh the dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := a.client.SubmitChore(cmd.Context(), form)
			if err != nil {
				return err
			}

			_, err = a.client.Load(cmd.Context())
			if err == nil {
				_, err = fmt.Fprintf(a.out, "created chore #%d %s\n", created.ChoreID, created.ChoreName)
			}

			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.ChoreName, "name", "", "Chore name")
	flags.StringVar(&form.Value, "value", "", "Points the chore is worth")
	flags.StringVar(&form.Note, "note", "", "Optional note")
	flags.StringVar(&form.DueDate, "due", "", "Due date, YYYY-MM-DD")
	flags.StringVar(&form.ChoreTypeID, "type", "", "Chore type id")
	flags.StringVar(&form.ListID, "list", "", "List id")

	return cmd
}

func (a *app) choreShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one chore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			_, err = a.client.LoadChore(cmd.Context(), id)

			return err
		},
	}
}

func (a *app) choreEditCmd() *cobra.Command {
	var name, value, note, due, choreType, list string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change the given fields of a chore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var req choreDto.UpdateChoreRequest

			flags := cmd.Flags()
			if flags.Changed("name") {
				req.ChoreName = &name
			}

			if flags.Changed("note") {
				req.Note = &note
			}

			if flags.Changed("due") {
				req.DueDate = &due
			}

			req.Value = numericFlag(flags.Changed("value"), value)
			req.ChoreTypeID = numericFlag(flags.Changed("type"), choreType)
			req.ListID = numericFlag(flags.Changed("list"), list)

			_, err = a.client.EditChore(cmd.Context(), id, req)

			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "Chore name")
	flags.StringVar(&value, "value", "", "Points the chore is worth")
	flags.StringVar(&note, "note", "", "Note")
	flags.StringVar(&due, "due", "", "Due date, YYYY-MM-DD")
	flags.StringVar(&choreType, "type", "", "Chore type id")
	flags.StringVar(&list, "list", "", "List id")

	return cmd
}

func (a *app) choreCompleteCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a chore as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			done := !undo
			_, err = a.client.EditChore(cmd.Context(), id, choreDto.UpdateChoreRequest{IsCompleted: &done})

			return err
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the chore as not done")

	return cmd
}

func (a *app) choreDeleteCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a chore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			msg, err := a.client.DeleteChore(cmd.Context(), id, name)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.out, msg)

			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Chore name used in the confirmation")

	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.client.Logout(cmd.Context())
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}

	return id, nil
}

func numericFlag(changed bool, value string) *gDto.Numeric {
	if !changed {
		return nil
	}

	n := gDto.Numeric(value)

	return &n
}
