package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gosherlock/sherlock/pkg/sherlock"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sherlock client %s\n", sherlock.Version)
		if server := sherlock.LatestSupportedServer(); server != 0 {
			fmt.Printf("validated against Sherlock releases %d through %d\n",
				sherlock.EarliestSupportedVersion, server)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
