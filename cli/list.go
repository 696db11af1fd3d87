package cli

import (
	"github.com/spf13/cobra"
	"github.com/supakorn-kn/go-dashboard/remote"
	"github.com/supakorn-kn/go-dashboard/resources"
	"github.com/supakorn-kn/go-dashboard/screens"
)

func (a *app) newListCmd() *cobra.Command {

	var page int

	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "Print one page of a list screen",
		Long: "Fetch a list screen once and print the requested page with its page strip.\n" +
			"Resources: employees, contacts, reachus, subscribers, skills, services, it-services, heroes.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			client, err := remote.New(a.env.Remote)
			if err != nil {
				return err
			}

			set, err := screens.NewDashboard(resources.NewCatalog(client), a.env.PageSize)
			if err != nil {
				return err
			}

			screen, err := set.Get(args[0])
			if err != nil {
				return err
			}

			if err := screen.Refresh(cmd.Context()); err != nil {
				return err
			}

			if err := screen.GoTo(page); err != nil {
				return err
			}

			view, err := decodeView(screen.PageView())
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write([]byte(renderView(args[0], view) + "\n"))
			return err
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to print, starting at 1")

	return cmd
}
