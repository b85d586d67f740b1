// Package cli implements the sherlock command-line interface.
//
// Commands talk to a local Sherlock gRPC server: launch starts one from
// the newest installed Ansys release, health and exit manage it,
// describe lists the API surface, and delete-project / run-analysis
// drive project operations. Connection settings come from the layered
// configuration in internal/cliconfig, overridable with persistent
// flags.
package cli
