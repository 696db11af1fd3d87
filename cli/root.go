// Package cli is the dashboard command line: the HTTP server and one-shot
// views of the list screens for use from a terminal.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/supakorn-kn/go-dashboard/env"
)

type app struct {
	lookup env.LookupFunc
	env    *env.Env
}

// NewRootCmd builds the dashboard command reading config from the process environment.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

// NewRootCmdWithLookup builds the command tree with an injected env lookup.
func NewRootCmdWithLookup(lookup env.LookupFunc) *cobra.Command {
	return newRootCmd(&app{lookup: lookup})
}

func (a *app) loadEnv() (*env.Env, error) {

	if a.lookup == nil {
		return env.GetEnv()
	}

	return env.Load(a.lookup)
}

func newRootCmd(a *app) *cobra.Command {

	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Admin dashboard over the site's content API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {

			loaded, err := a.loadEnv()
			if err != nil {
				return err
			}

			a.env = loaded
			slog.SetDefault(env.NewLogger(loaded.Log, cmd.ErrOrStderr()))

			return nil
		},
	}

	cmd.AddCommand(a.newServeCmd(), a.newListCmd(), a.newCountsCmd())

	return cmd
}
