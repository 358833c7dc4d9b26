package main

import (
	"os"

	"github.com/stpnv0/HackathonLifecycle/cmd/hackathon_lifecycle/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
