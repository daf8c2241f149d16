package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/stylegen
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of stylegen",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("stylegen %s\n", version)
	},
}
