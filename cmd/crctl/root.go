package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"change-request-service/internal/client"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	Server  string
	Token   string
	Timeout time.Duration
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (o *rootOptions) client() (*client.Client, error) {
	if strings.TrimSpace(o.Server) == "" {
		return nil, errors.New("--server is required")
	}
	var opts []client.Option
	if o.Token != "" {
		opts = append(opts, client.WithToken(o.Token))
	}
	return client.New(o.Server, opts...)
}

func (o *rootOptions) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.Timeout)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "crctl",
		Short:         "Command line client for the change request service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.Server, "server", envOr("CRCTL_SERVER", "http://localhost:8080"), "service base URL (CRCTL_SERVER)")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", envOr("CRCTL_TOKEN", ""), "bearer token (CRCTL_TOKEN)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "per command timeout")

	cmd.AddCommand(newLoginCmd(opts))
	cmd.AddCommand(newSignupCmd(opts))
	cmd.AddCommand(newMeCmd(opts))
	cmd.AddCommand(newPendingCmd(opts))
	cmd.AddCommand(newApprovedCmd(opts))
	cmd.AddCommand(newRolledBackCmd(opts))
	cmd.AddCommand(newRequestCmd(opts))
	cmd.AddCommand(newAssignCmd(opts))
	cmd.AddCommand(newProjectCmd(opts))
	cmd.AddCommand(newUsersCmd(opts))
	cmd.AddCommand(newReportsCmd(opts))
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
