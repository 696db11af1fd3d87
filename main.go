package main

import (
	"log/slog"
	"os"

	"github.com/supakorn-kn/go-dashboard/cli"
)

func main() {

	if err := cli.NewRootCmd().Execute(); err != nil {
		slog.Error("dashboard failed", "error", err)
		os.Exit(1)
	}
}
