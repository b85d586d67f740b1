package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var healthJSON bool

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check if the Sherlock server is healthy and reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := connectClient()
		if err != nil {
			return err
		}
		defer client.Close()

		type healthResult struct {
			Status  string `json:"status"`
			Address string `json:"address"`
		}

		ctx, cancel := callContext()
		defer cancel()

		if !client.CheckConnection(ctx) {
			result := healthResult{Status: "unhealthy", Address: serverAddress()}
			if healthJSON {
				if err := printJSON(os.Stdout, result); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(os.Stderr, "unhealthy: no Sherlock server on %s\n", serverAddress())
			}
			return errors.New("server is not healthy")
		}

		result := healthResult{Status: "healthy", Address: serverAddress()}
		if healthJSON {
			return printJSON(os.Stdout, result)
		}
		fmt.Println("healthy")
		return nil
	},
}

func init() {
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(healthCmd)
}
