// Package launcher starts a local Sherlock gRPC server and connects to
// it.
//
// The Ansys unified installer records each installed release in an
// AWP_ROOT<version> environment variable (e.g. AWP_ROOT251 for 2025 R1).
// Launch picks the newest supported release, starts its Sherlock client
// with -grpcPort, and polls the health check until the server answers:
//
//	l := launcher.New(launcher.WithPort(9092))
//	client, err := l.Launch(ctx)
//
// Connect attaches to a server that is already running.
package launcher
