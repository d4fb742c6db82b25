package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"change-request-service/internal/client"
)

func printRequests(w io.Writer, list []client.ChangeRequest) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPROJECT\tTYPE\tSTATUS\tCREATED\tDESCRIPTION")
	for _, cr := range list {
		project := cr.ProjectID
		if cr.Project != nil {
			project = cr.Project.Title
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			cr.ID, project, cr.RequestType, cr.Status, cr.CreatedAt.Format(time.DateOnly), cr.Description)
	}
	return tw.Flush()
}

func printProjects(w io.Writer, list []client.Project) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDESCRIPTION")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Title, p.Description)
	}
	return tw.Flush()
}

func printUsers(w io.Writer, list []client.User) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tSTATUS")
	for _, u := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.UserType, u.Status)
	}
	return tw.Flush()
}
