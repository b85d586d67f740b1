package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteProjectCmd = &cobra.Command{
	Use:   "delete-project NAME",
	Short: "Delete a project from the Sherlock server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := connectClient()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := callContext()
		defer cancel()

		if err := client.Project.DeleteProject(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted project %q\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteProjectCmd)
}
