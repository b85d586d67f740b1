package sherlock

import "strings"

// Version is the release of this client library.
const Version = "0.3.0"

// Server version handling. Sherlock releases are identified by a
// three-digit number, e.g. 251 for release 2025 R1.
const (
	// EarliestSupportedVersion is the oldest Sherlock release this client
	// can talk to.
	EarliestSupportedVersion = 211

	// VersionCheckSkip disables per-operation server version gating.
	VersionCheckSkip = -1
)

// serverCompatibility maps a client minor release to the newest Sherlock
// release it was validated against.
var serverCompatibility = map[string]int{
	"0.1": 231,
	"0.2": 241,
	"0.3": 251,
}

// LatestSupportedServer returns the newest Sherlock release this client
// release was validated against, or 0 when the client release is unknown.
func LatestSupportedServer() int {
	if i := strings.LastIndex(Version, "."); i > 0 {
		return serverCompatibility[Version[:i]]
	}
	return 0
}

// requireVersion gates operations that only newer Sherlock releases
// implement. A zero server version means the caller never declared one,
// in which case gated operations are refused rather than sent blind.
func (c *Client) requireVersion(op string, min int) error {
	if c.serverVersion == VersionCheckSkip {
		return nil
	}
	if c.serverVersion == 0 || c.serverVersion < min {
		return &VersionError{Op: op, Server: c.serverVersion, Min: min}
	}
	return nil
}
