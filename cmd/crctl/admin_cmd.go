package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"change-request-service/internal/client"

	"github.com/spf13/cobra"
)

func newAssignCmd(root *rootOptions) *cobra.Command {
	show := func(cmd *cobra.Command, v *client.AssignmentView) error {
		out := cmd.OutOrStdout()
		u := v.User()
		fmt.Fprintf(out, "%s (%s)\n\nassigned:\n", u.Username, u.UserType)
		if err := printProjects(out, v.Revocable()); err != nil {
			return err
		}
		fmt.Fprintln(out, "\nassignable:")
		return printProjects(out, v.Assignable())
	}

	run := func(action string) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			if err := requireRole(cmd, root, c, client.RoleAdmin); err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			v := client.NewAssignmentView(c, args[0])
			if err := v.Load(ctx); err != nil {
				return errors.New(v.ErrorMessage())
			}
			switch action {
			case "add":
				err = v.Assign(ctx, args[1])
			case "revoke":
				err = v.Revoke(ctx, args[1])
			}
			if err != nil {
				return errors.New(v.ErrorMessage())
			}
			return show(cmd, v)
		}
	}

	cmd := &cobra.Command{
		Use:   "assign <userId>",
		Short: "Show the projects assigned to a user",
		Args:  cobra.ExactArgs(1),
		RunE:  run("show"),
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <userId> <project title>",
		Short: "Assign a project to a user",
		Args:  cobra.ExactArgs(2),
		RunE:  run("add"),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "revoke <userId> <project title>",
		Short: "Revoke a project from a user",
		Args:  cobra.ExactArgs(2),
		RunE:  run("revoke"),
	})
	return cmd
}

func newProjectCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			list, err := c.ListProjects(ctx)
			if err != nil {
				return errors.New(client.MessageOr(err, "Failed to fetch projects"))
			}
			return printProjects(cmd.OutOrStdout(), list)
		},
	}

	var title, description string
	create := &cobra.Command{
		Use:   "create --title <title> --description <text>",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			f := client.NewProjectForm(c)
			f.Title, f.Description = title, description
			p, err := f.Submit(ctx)
			if err != nil {
				return errors.New(f.ErrorMessage())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.ID, p.Title)
			return nil
		},
	}
	create.Flags().StringVar(&title, "title", "", "project title")
	create.Flags().StringVar(&description, "description", "", "project description")
	cmd.AddCommand(create)

	var newTitle, newDescription string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a project's title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			f := client.NewProjectEditForm(c, args[0])
			if err := f.Load(ctx); err != nil {
				return errors.New(f.ErrorMessage())
			}
			if cmd.Flags().Changed("title") {
				f.Title = newTitle
			}
			if cmd.Flags().Changed("description") {
				f.Description = newDescription
			}
			p, err := f.Save(ctx)
			if err != nil {
				return errors.New(f.ErrorMessage())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\nChanges saved!\n", p.ID, p.Title)
			return nil
		},
	}
	update.Flags().StringVar(&newTitle, "title", "", "new title")
	update.Flags().StringVar(&newDescription, "description", "", "new description")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			f := client.NewProjectEditForm(c, args[0])
			if err := f.Delete(ctx); err != nil {
				return errors.New(f.ErrorMessage())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: deleted\n", args[0])
			return nil
		},
	})
	return cmd
}

func newUsersCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			v := client.NewUsersList(c)
			if err := v.Load(ctx); err != nil {
				return errors.New(v.ErrorMessage())
			}
			return printUsers(cmd.OutOrStdout(), v.Users())
		},
	}

	var username, userType, status string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a user's name, role or status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			f := client.NewUserForm(c, args[0])
			f.Username, f.UserType, f.Status = username, userType, status
			u, err := f.Save(ctx)
			if err != nil {
				return errors.New(f.ErrorMessage())
			}
			return printUsers(cmd.OutOrStdout(), []client.User{*u})
		},
	}
	update.Flags().StringVar(&username, "username", "", "new username")
	update.Flags().StringVar(&userType, "role", "", "admin, approver or developer")
	update.Flags().StringVar(&status, "status", "", "pending, active or inactive")

	cmd.AddCommand(update)

	var nu client.NewUser
	create := &cobra.Command{
		Use:   "create --username <name> --email <addr> --password <secret> --role <role>",
		Short: "Create a user directly",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			f := client.NewAddUserForm(c)
			f.Username, f.Email, f.Password, f.UserType, f.Status = nu.Username, nu.Email, nu.Password, nu.UserType, nu.Status
			u, err := f.Submit(ctx)
			if err != nil {
				return errors.New(f.ErrorMessage())
			}
			return printUsers(cmd.OutOrStdout(), []client.User{*u})
		},
	}
	create.Flags().StringVar(&nu.Username, "username", "", "username")
	create.Flags().StringVar(&nu.Email, "email", "", "email")
	create.Flags().StringVar(&nu.Password, "password", "", "initial password")
	create.Flags().StringVar(&nu.UserType, "role", "", "admin, approver or developer")
	create.Flags().StringVar(&nu.Status, "status", "", "pending, active or inactive (default active)")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			v := client.NewUsersList(c)
			if err := v.Delete(ctx, args[0]); err != nil {
				return errors.New(v.ErrorMessage())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: deleted\n", args[0])
			return nil
		},
	})
	return cmd
}

func newReportsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "Per-user change request counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			v := client.NewReportsView(c)
			if err := v.Load(ctx); err != nil {
				return errors.New(v.ErrorMessage())
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "USER\tTOTAL\tPENDING\tAPPROVED\tROLLEDBACK\tDEPLOYED")
			for _, r := range v.Reports() {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\n", r.User.Username, r.Total, r.Pending, r.Approved, r.RolledBack, r.Deployed)
			}
			return tw.Flush()
		},
	}
}
