package sherlock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/gosherlock/sherlock/pkg/sherlocktest"
)

// newTestClient starts an in-process mock server and connects a client
// to it. Version gating is disabled; tests for it set versions
// explicitly.
func newTestClient(t *testing.T, opts ...Option) (*Client, *sherlocktest.Server) {
	t.Helper()
	srv, err := sherlocktest.NewServer()
	require.NoError(t, err)
	require.NoError(t, srv.Start())
	t.Cleanup(func() { srv.Stop(time.Second) })

	opts = append([]Option{WithServerVersion(VersionCheckSkip)}, opts...)
	client, err := Connect(srv.Address(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, srv
}

// newDisconnectedClient connects a client to a port nothing listens on.
func newDisconnectedClient(t *testing.T) *Client {
	t.Helper()
	client, err := Connect("127.0.0.1:1", WithServerVersion(VersionCheckSkip))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCheckConnection(t *testing.T) {
	client, srv := newTestClient(t)
	ctx := context.Background()

	assert.True(t, client.CheckConnection(ctx))
	assert.NoError(t, client.Common.Check(ctx))

	srv.Stop(time.Second)
	assert.False(t, client.CheckConnection(ctx))
	assert.ErrorIs(t, client.Common.Check(ctx), ErrNotConnected)
}

func TestOperationsFailFastWhenDisconnected(t *testing.T) {
	client := newDisconnectedClient(t)
	ctx := context.Background()

	err := client.Project.DeleteProject(ctx, "Test")
	assert.ErrorIs(t, err, ErrNotConnected)

	err = client.Common.Exit(ctx, false)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestDeleteProject(t *testing.T) {
	client, srv := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Project.DeleteProject(ctx, "Test"))

	reqs := srv.Requests("SherlockProjectService", "deleteProject")
	require.Len(t, reqs, 1)
	assert.Equal(t, "Test", reqs[0]["project"])
}

func TestDeleteProjectBlankName(t *testing.T) {
	client, srv := newTestClient(t)

	err := client.Project.DeleteProject(context.Background(), "")
	var ae *ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "delete project", ae.Op)

	// No remote call was made.
	assert.Empty(t, srv.Requests("SherlockProjectService", "deleteProject"))
}

func TestDeleteProjectServerFailure(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetReturnCode("SherlockProjectService", "deleteProject", -1, "no such project")

	err := client.Project.DeleteProject(context.Background(), "Missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "no such project", apiErr.Message)
	assert.Contains(t, err.Error(), "no such project")
}

func TestExitPassThrough(t *testing.T) {
	client, srv := newTestClient(t)

	require.NoError(t, client.Common.Exit(context.Background(), true))

	reqs := srv.Requests("SherlockCommonService", "exit")
	require.Len(t, reqs, 1)
	assert.Equal(t, true, reqs[0]["closeSherlockClient"])
}

func TestErrorDetails(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetError("SherlockProjectService", "deleteProject", codes.Internal, "boom", "PROJECT_LOCKED")

	err := client.Project.DeleteProject(context.Background(), "Test")
	require.Error(t, err)
	assert.Equal(t, []string{"PROJECT_LOCKED"}, ErrorDetails(err))
}

func TestVersionGate(t *testing.T) {
	tests := []struct {
		name    string
		version int
		wantErr bool
	}{
		{"skip", VersionCheckSkip, false},
		{"new enough", 251, false},
		{"too old", 221, true},
		{"unknown", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := sherlocktest.NewServer()
			require.NoError(t, err)
			require.NoError(t, srv.Start())
			defer srv.Stop(time.Second)

			client, err := Connect(srv.Address(), WithServerVersion(tt.version))
			require.NoError(t, err)
			defer client.Close()

			err = client.Project.GenerateProjectReport(context.Background(), "Test", "author", "company", "report.pdf")
			if tt.wantErr {
				var ve *VersionError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAPIErrorMessages(t *testing.T) {
	err := &APIError{Op: "update parts list", Errors: []string{"bad row 1", "bad row 2"}}
	assert.Equal(t, "update parts list error: bad row 1; bad row 2", err.Error())
	assert.Equal(t, []string{
		"update parts list error: bad row 1",
		"update parts list error: bad row 2",
	}, err.Messages())

	withMsg := &APIError{Op: "exit", Message: "denied"}
	assert.Equal(t, "exit error: denied", withMsg.Error())
	assert.Equal(t, []string{"exit error: denied"}, withMsg.Messages())
}

func TestConnectBadTarget(t *testing.T) {
	_, err := Connect("bad\x00target")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotConnected))
}
