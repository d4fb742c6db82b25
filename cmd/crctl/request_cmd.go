package main

import (
	"errors"
	"fmt"

	"change-request-service/internal/client"

	"github.com/spf13/cobra"
)

func newRequestCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Submit and browse change requests",
	}
	cmd.AddCommand(newRequestCreateCmd(root))
	cmd.AddCommand(newRequestHistoryCmd(root))
	return cmd
}

func newRequestCreateCmd(root *rootOptions) *cobra.Command {
	var projectID, requestType, description string

	cmd := &cobra.Command{
		Use:   "create --project <id> --type <type> --description <text>",
		Short: "Submit a change request for an assigned project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			f := client.NewChangeRequestForm(c)
			f.ProjectID, f.RequestType, f.Description = projectID, requestType, description
			cr, err := f.Submit(ctx)
			if err != nil {
				return errors.New(f.ErrorMessage())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cr.ID, cr.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "project id")
	cmd.Flags().StringVar(&requestType, "type", "", "new_feature, edited_feature, bug_fix or updates")
	cmd.Flags().StringVar(&description, "description", "", "what changes")
	return cmd
}

func newRequestHistoryCmd(root *rootOptions) *cobra.Command {
	var userID, projectID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List change requests of a user (default: yourself) or a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			var list *client.RequestList
			switch {
			case projectID != "":
				list = client.NewProjectRequests(c, projectID)
			case userID != "":
				list = client.NewHistory(c, userID)
			default:
				me, err := c.Me(ctx)
				if err != nil {
					return errors.New(client.MessageOr(err, "Authentication check failed"))
				}
				list = client.NewHistory(c, me.ID)
			}
			if err := list.Load(ctx); err != nil {
				return errors.New(list.ErrorMessage())
			}
			return printRequests(cmd.OutOrStdout(), list.Requests())
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	cmd.Flags().StringVar(&projectID, "project", "", "project id")
	return cmd
}
