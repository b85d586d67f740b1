package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exitCloseClient bool

var exitCmd = &cobra.Command{
	Use:   "exit",
	Short: "Shut down the Sherlock gRPC server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := connectClient()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := callContext()
		defer cancel()

		if err := client.Common.Exit(ctx, exitCloseClient); err != nil {
			return err
		}
		fmt.Println("sherlock server stopped")
		return nil
	},
}

func init() {
	exitCmd.Flags().BoolVar(&exitCloseClient, "close-client", false, "Also close the Sherlock client application")
	rootCmd.AddCommand(exitCmd)
}
