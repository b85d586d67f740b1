// Package sherlocktest provides an in-process mock of the Sherlock gRPC
// server for tests and offline development.
//
// The server registers every service of the embedded Sherlock IDL. Each
// method answers with an empty response by default, which clients read
// as a zero (success) return code. Tests drive failure paths with
// SetReturnCode or SetError and inspect what was sent with Requests:
//
//	srv, _ := sherlocktest.NewServer()
//	_ = srv.Start()
//	defer srv.Stop(time.Second)
//
//	srv.SetReturnCode("SherlockProjectService", "deleteProject", -1, "no such project")
//
//	client, _ := sherlock.Connect(srv.Address())
//	err := client.Project.DeleteProject(ctx, "Missing")
package sherlocktest
