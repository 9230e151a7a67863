package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"casedesk/internal/workspace/model"
	"casedesk/internal/workspace/query"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listOpts query.Config

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the seed workspaces as the dashboard would list them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		seed, err := loadSeed(cmd.Context(), cfg.Seed)
		if err != nil {
			return err
		}

		printWorkspaces(cmd.OutOrStdout(), query.Apply(seed, listOpts))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.Search, "search", "s", "", "case-insensitive match on name, client or organizer")
	listCmd.Flags().StringVar(&listOpts.Status, "status", model.StatusAll, `status filter ("In Progress", "Completed", "Pending" or "all")`)
	listCmd.Flags().StringVar(&listOpts.SortBy, "sort", query.SortByCreatedAt, "field to sort by")
	listCmd.Flags().StringVar(&listOpts.Order, "order", query.OrderDesc, "asc or desc")
}

var statusColors = map[string]*color.Color{
	model.StatusInProgress: color.New(color.FgYellow),
	model.StatusCompleted:  color.New(color.FgGreen),
	model.StatusPending:    color.New(color.FgHiBlack),
}

func printWorkspaces(out io.Writer, workspaces []model.Workspace) {
	if len(workspaces) == 0 {
		fmt.Fprintf(out, "%s\n%s\n", model.NoWorkspaces.Title, model.NoWorkspaces.Hint)
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCLIENT\tORGANIZER\tSTATUS\tCREATED")
	for _, w := range workspaces {
		status := w.Status
		if c, ok := statusColors[status]; ok {
			status = c.Sprint(status)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", w.ID, w.Name, w.Client, w.Organizer, status, w.CreatedAt)
	}
	tw.Flush()
}
