// Package sherlock is a Go client for the Ansys Sherlock reliability
// analysis gRPC service.
//
// A Client wraps one gRPC channel and groups operations into service
// areas mirroring the server's API surface: Common, Project, Parts,
// Lifecycle, Stackup, Layer, Model, and Analysis. The client is
// stateless apart from cached server-provided option lists; all project
// data lives in the Sherlock server.
//
//	client, err := sherlock.Connect("127.0.0.1:9090")
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	err = client.Project.ImportODBArchive(ctx, "Tutorial.tgz", sherlock.ImportODBOptions{
//		Project: "Test",
//		CCA:     "Card",
//	})
//
// To locate a local Sherlock installation and start the server first,
// use the launcher package.
//
// Operations validate their arguments before calling out: enumerated
// values are checked against lists fetched from the server once per
// client, numeric constraints locally. Invalid arguments surface as
// *ArgumentError without a remote call; server-side failures surface as
// *APIError.
package sherlock
