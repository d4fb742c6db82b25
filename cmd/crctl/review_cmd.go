package main

import (
	"errors"
	"fmt"

	"change-request-service/internal/client"

	"github.com/spf13/cobra"
)

func newPendingCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Review pending change requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			if err := requireRole(cmd, root, c, client.RoleApprover, client.RoleAdmin); err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			v := client.NewPendingReview(c)
			if err := v.Load(ctx); err != nil {
				return errors.New(v.ErrorMessage())
			}
			return printRequests(cmd.OutOrStdout(), v.Requests())
		},
	}
	cmd.AddCommand(newDecisionCmd(root, "approve", false))
	cmd.AddCommand(newDecisionCmd(root, "rollback", true))
	return cmd
}

func newDecisionCmd(root *rootOptions, action string, rollback bool) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   action + " <id>",
		Short: action + " a pending change request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			v := client.NewPendingReview(c)
			if err := v.Load(ctx); err != nil {
				return errors.New(v.ErrorMessage())
			}
			id := args[0]
			v.SetReason(id, reason)
			if rollback {
				err = v.Rollback(ctx, id)
			} else {
				err = v.Approve(ctx, id)
			}
			if err != nil {
				return errors.New(v.ErrorMessage())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: done, %d pending left\n", id, len(v.Requests()))
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded with the decision")
	return cmd
}

func newApprovedCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approved",
		Short: "List approved change requests awaiting deployment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			v := client.NewDeploymentQueue(c)
			if err := v.Load(ctx); err != nil {
				return errors.New(v.ErrorMessage())
			}
			return printRequests(cmd.OutOrStdout(), v.Requests())
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "deploy <id>",
		Short: "Mark an approved change request as deployed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			v := client.NewDeploymentQueue(c)
			if err := v.MarkDeployed(ctx, args[0]); err != nil {
				return errors.New(v.ErrorMessage())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: deployed\n", args[0])
			return nil
		},
	})
	return cmd
}

func newRolledBackCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rolled-back",
		Short: "List rolled back change requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			ctx, cancel := root.context(cmd)
			defer cancel()

			v := client.NewRolledBackList(c)
			if err := v.Load(ctx); err != nil {
				return errors.New(v.ErrorMessage())
			}
			return printRequests(cmd.OutOrStdout(), v.Requests())
		},
	}
}
