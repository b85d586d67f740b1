package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gosherlock/sherlock/pkg/logging"
	"github.com/gosherlock/sherlock/pkg/sherlock"
)

// Connection defaults. The Sherlock gRPC server only listens on the
// loopback interface.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 9090
)

// awpRootPrefix is the prefix of the environment variables the Ansys
// unified installer sets, e.g. AWP_ROOT251 for release 2025 R1.
const awpRootPrefix = "AWP_ROOT"

// defaultWaitTimeout bounds how long Launch waits for the started server
// to answer its health check.
const defaultWaitTimeout = 2 * time.Minute

// ErrInstallationNotFound is returned when no supported Ansys
// installation can be located from the environment.
var ErrInstallationNotFound = errors.New("no supported Ansys installation found")

// PortError reports a connection port that cannot be used.
type PortError struct {
	Port   int
	Reason string
}

func (e *PortError) Error() string {
	return fmt.Sprintf("cannot use port %d: %s", e.Port, e.Reason)
}

// Launcher locates a local Sherlock installation, starts its gRPC
// server, and connects to it.
type Launcher struct {
	host        string
	port        int
	args        []string
	log         *slog.Logger
	waitTimeout time.Duration
	clientOpts  []sherlock.Option
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithHost sets the host to bind and connect to. Defaults to DefaultHost.
func WithHost(host string) Option {
	return func(l *Launcher) {
		l.host = host
	}
}

// WithPort sets the gRPC port the server is told to listen on. Defaults
// to DefaultPort.
func WithPort(port int) Option {
	return func(l *Launcher) {
		l.port = port
	}
}

// WithArgs appends extra command line arguments for the Sherlock client
// executable.
func WithArgs(args ...string) Option {
	return func(l *Launcher) {
		l.args = append(l.args, args...)
	}
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(log *slog.Logger) Option {
	return func(l *Launcher) {
		l.log = log
	}
}

// WithWaitTimeout bounds how long Launch waits for the server to become
// healthy after starting it.
func WithWaitTimeout(d time.Duration) Option {
	return func(l *Launcher) {
		l.waitTimeout = d
	}
}

// WithClientOptions passes options through to the sherlock.Client that
// Launch and Connect create.
func WithClientOptions(opts ...sherlock.Option) Option {
	return func(l *Launcher) {
		l.clientOpts = append(l.clientOpts, opts...)
	}
}

// New creates a Launcher.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		host:        DefaultHost,
		port:        DefaultPort,
		log:         logging.Nop(),
		waitTimeout: defaultWaitTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts the Sherlock client of the newest supported local
// installation with gRPC enabled on the configured port, then connects
// and waits for the server to answer its health check. The server
// process is not terminated when the returned client is closed.
func (l *Launcher) Launch(ctx context.Context) (*sherlock.Client, error) {
	if err := checkPortAvailable(l.host, l.port); err != nil {
		return nil, err
	}

	install, version, err := findInstallation(os.Environ())
	if err != nil {
		return nil, err
	}
	exe := executablePath(install)
	args := append([]string{fmt.Sprintf("-grpcPort=%d", l.port)}, l.args...)

	l.log.Info("starting sherlock", "exe", exe, "version", version, "port", l.port)
	cmd := exec.Command(exe, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start sherlock: %w", err)
	}
	// The server is a desktop application that outlives this process.
	// Release the handle so it is not reaped on exit.
	if err := cmd.Process.Release(); err != nil {
		l.log.Warn("release sherlock process handle", "error", err)
	}

	opts := append([]sherlock.Option{sherlock.WithServerVersion(version)}, l.clientOpts...)
	client, err := sherlock.Connect(net.JoinHostPort(l.host, strconv.Itoa(l.port)), opts...)
	if err != nil {
		return nil, err
	}
	if err := l.waitUntilHealthy(ctx, client); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// Connect connects to an already-running Sherlock server on the
// configured host and port and verifies it answers its health check.
func (l *Launcher) Connect(ctx context.Context) (*sherlock.Client, error) {
	client, err := sherlock.Connect(net.JoinHostPort(l.host, strconv.Itoa(l.port)), l.clientOpts...)
	if err != nil {
		return nil, err
	}
	if !client.CheckConnection(ctx) {
		client.Close()
		return nil, fmt.Errorf("connect %s:%d: %w", l.host, l.port, sherlock.ErrNotConnected)
	}
	return client, nil
}

// waitUntilHealthy polls the health check until it passes or the wait
// times out.
func (l *Launcher) waitUntilHealthy(ctx context.Context, client *sherlock.Client) error {
	ctx, cancel := context.WithTimeout(ctx, l.waitTimeout)
	defer cancel()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		if client.CheckConnection(ctx) {
			l.log.Info("sherlock server is up", "host", l.host, "port", l.port)
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for sherlock on port %d: %w", l.port, ctx.Err())
		case <-ticker.C:
		}
	}
}

// checkPortAvailable probes that the port can be bound before handing it
// to the server process.
func checkPortAvailable(host string, port int) error {
	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return &PortError{Port: port, Reason: "port is already in use"}
	}
	ln.Close()
	return nil
}

// findInstallation scans AWP_ROOT<version> environment variables for the
// newest installed release that this client supports. environ uses the
// os.Environ "key=value" form.
func findInstallation(environ []string) (path string, version int, err error) {
	type install struct {
		version int
		path    string
	}
	var installs []install
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, awpRootPrefix) {
			continue
		}
		v, err := strconv.Atoi(strings.TrimPrefix(key, awpRootPrefix))
		if err != nil || v < sherlock.EarliestSupportedVersion {
			continue
		}
		if info, err := os.Stat(value); err != nil || !info.IsDir() {
			continue
		}
		installs = append(installs, install{version: v, path: value})
	}
	if len(installs) == 0 {
		return "", 0, ErrInstallationNotFound
	}
	sort.Slice(installs, func(i, j int) bool { return installs[i].version > installs[j].version })
	return installs[0].path, installs[0].version, nil
}

// executablePath builds the path of the Sherlock client executable under
// an Ansys installation root.
func executablePath(install string) string {
	name := "sherlockclient"
	if runtime.GOOS == "windows" {
		name = "SherlockClient.exe"
	}
	return filepath.Join(install, "sherlock", name)
}
