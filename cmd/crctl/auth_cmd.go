package main

import (
	"errors"
	"fmt"
	"strings"

	"change-request-service/internal/client"

	"github.com/spf13/cobra"
)

func newLoginCmd(root *rootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login --username <name> --password <secret>",
		Short: "Log in and print a token for CRCTL_TOKEN",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(username) == "" || password == "" {
				return errors.New("--username and --password are required")
			}
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			s, err := c.Login(ctx, username, password)
			if err != nil {
				return errors.New(client.MessageOr(err, "login failed"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username or email")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

// newSignupCmd registers a developer account; an admin activates it later.
func newSignupCmd(root *rootOptions) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "signup --username <name> --email <addr> --password <secret>",
		Short: "Request a developer account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			f := client.NewSignupForm(c)
			f.Username, f.Email, f.Password = username, email, password
			u, err := f.Submit(ctx)
			if err != nil {
				return errors.New(f.ErrorMessage())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s registered with status %s\n", u.Username, u.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username (no @)")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&password, "password", "", "password, at least 6 characters")
	return cmd
}

// newMeCmd prints the identity and the dashboard links it unlocks.
func newMeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current user and their navigation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			shell := client.NewShell(c)
			if err := shell.Load(ctx); err != nil {
				return errors.New(shell.ErrorMessage())
			}
			u := shell.User()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s> role=%s status=%s\n", u.Username, u.Email, u.UserType, u.Status)
			if shell.NoAccess() {
				fmt.Fprintln(out, client.NoAccessMessage)
				return nil
			}
			fmt.Fprintln(out, client.DefaultRoute(u.UserType))
			for _, l := range shell.Links() {
				fmt.Fprintf(out, "  %-24s %s\n", l.Label, l.Path)
			}
			return nil
		},
	}
}

// requireRole runs the route guard the dashboards use before a command acts.
func requireRole(cmd *cobra.Command, root *rootOptions, c *client.Client, roles ...string) error {
	ctx, cancel := root.context(cmd)
	defer cancel()
	d := client.NewGuard(c).Check(ctx, roles...)
	if d.Allowed {
		return nil
	}
	if d.Redirect == "/login" {
		return errors.New("not logged in: run crctl login")
	}
	return fmt.Errorf("not allowed for this role (see %s)", d.Redirect)
}
