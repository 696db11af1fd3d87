package cli

import (
	"github.com/spf13/cobra"
	"github.com/supakorn-kn/go-dashboard/remote"
	"github.com/supakorn-kn/go-dashboard/resources"
)

func (a *app) newCountsCmd() *cobra.Command {

	return &cobra.Command{
		Use:   "counts",
		Short: "Print the dashboard metric cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {

			client, err := remote.New(a.env.Remote)
			if err != nil {
				return err
			}

			summary, err := resources.NewCatalog(client).Summarize(cmd.Context())
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write([]byte(renderSummary(summary) + "\n"))
			return err
		},
	}
}
