package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gosherlock/sherlock/pkg/launcher"
)

var launchWait int

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Start the local Sherlock server and wait until it is healthy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := launcher.New(
			launcher.WithHost(cfg.Host),
			launcher.WithPort(cfg.Port),
			launcher.WithLogger(log),
			launcher.WithWaitTimeout(time.Duration(launchWait)*time.Second),
		)
		ctx, cancel := callContext()
		defer cancel()

		client, err := l.Launch(ctx)
		if err != nil {
			return err
		}
		defer client.Close()
		fmt.Printf("sherlock is up on %s\n", serverAddress())
		return nil
	},
}

func init() {
	launchCmd.Flags().IntVar(&launchWait, "wait", 120, "seconds to wait for the server to become healthy")
	rootCmd.AddCommand(launchCmd)
}
