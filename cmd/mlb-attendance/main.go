package main

import (
	"os"

	"github.com/pfrederiksen/mlb-attendance/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(cli.ExitError)
	}
}
