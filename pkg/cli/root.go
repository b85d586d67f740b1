package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gosherlock/sherlock/internal/cliconfig"
	"github.com/gosherlock/sherlock/pkg/logging"
	"github.com/gosherlock/sherlock/pkg/sherlock"
)

// Persistent flag values. Flags override the layered config when set.
var (
	flagHost          string
	flagPort          int
	flagServerVersion int
	flagTimeout       int
	flagLogLevel      string
	flagLogFormat     string
)

// cfg is the merged configuration, built in the persistent pre-run.
var cfg *cliconfig.CLIConfig

// log is the CLI logger, built from the merged configuration.
var log *slog.Logger = logging.Nop()

var rootCmd = &cobra.Command{
	Use:           "sherlock",
	Short:         "Client for the Ansys Sherlock reliability analysis service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := cliconfig.LoadAll()
		if err != nil {
			return err
		}
		cfg = loaded
		applyFlags(cmd)
		log = logging.New(logging.Config{
			Level:  logging.ParseLevel(cfg.LogLevel),
			Format: logging.ParseFormat(cfg.LogFormat),
		})
		return nil
	},
}

// applyFlags overlays explicitly-set flags onto the merged config.
func applyFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("host") {
		cfg.Host = flagHost
		cfg.Sources["host"] = cliconfig.SourceFlag
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
		cfg.Sources["port"] = cliconfig.SourceFlag
	}
	if cmd.Flags().Changed("server-version") {
		cfg.ServerVersion = flagServerVersion
		cfg.Sources["serverVersion"] = cliconfig.SourceFlag
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = flagTimeout
		cfg.Sources["timeoutSeconds"] = cliconfig.SourceFlag
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
		cfg.Sources["logLevel"] = cliconfig.SourceFlag
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = flagLogFormat
		cfg.Sources["logFormat"] = cliconfig.SourceFlag
	}
}

// serverAddress returns the configured host:port.
func serverAddress() string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}

// connectClient opens a client to the configured server.
func connectClient() (*sherlock.Client, error) {
	return sherlock.Connect(serverAddress(),
		sherlock.WithLogger(log),
		sherlock.WithServerVersion(cfg.ServerVersion),
	)
}

// callContext returns a context honoring the configured timeout.
func callContext() (context.Context, context.CancelFunc) {
	if cfg.TimeoutSeconds > 0 {
		return context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSeconds)*time.Second)
	}
	return context.WithCancel(context.Background())
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagHost, "host", "", "Sherlock server host")
	pf.IntVar(&flagPort, "port", 0, "Sherlock gRPC port")
	pf.IntVar(&flagServerVersion, "server-version", 0, "Sherlock server release, e.g. 251 (-1 skips version gating)")
	pf.IntVar(&flagTimeout, "timeout", 0, "per-call timeout in seconds (0 = no deadline)")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flagLogFormat, "log-format", "", "log format: text or json")
}
