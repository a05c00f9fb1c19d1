package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information
var (
	Version   = "0.1.0-dev"
	GitCommit = "development"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "sslc version %s (%s)\n", Version, GitCommit)
			fmt.Fprintf(w, "go version %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
