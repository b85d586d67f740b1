package sherlocktest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/gosherlock/sherlock/pkg/sherlock"
	"github.com/gosherlock/sherlock/pkg/sherlocktest"
)

func startServer(t *testing.T) *sherlocktest.Server {
	t.Helper()
	srv, err := sherlocktest.NewServer()
	require.NoError(t, err)
	require.NoError(t, srv.Start())
	t.Cleanup(func() { srv.Stop(time.Second) })
	return srv
}

func connect(t *testing.T, srv *sherlocktest.Server) *sherlock.Client {
	t.Helper()
	client, err := sherlock.Connect(srv.Address(),
		sherlock.WithServerVersion(sherlock.VersionCheckSkip))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStartStop(t *testing.T) {
	srv, err := sherlocktest.NewServer()
	require.NoError(t, err)

	require.NoError(t, srv.Start())
	assert.ErrorIs(t, srv.Start(), sherlocktest.ErrServerAlreadyRunning)
	assert.NotEmpty(t, srv.Address())

	srv.Stop(time.Second)
	// Stopping twice is a no-op.
	srv.Stop(time.Second)

	require.NoError(t, srv.Start())
	srv.Stop(time.Second)
}

func TestDefaultSuccess(t *testing.T) {
	srv := startServer(t)
	client := connect(t, srv)

	// With nothing configured every method answers with an empty message,
	// which reads as a zero (success) return code.
	assert.NoError(t, client.Project.DeleteProject(context.Background(), "Test"))
}

func TestSetReturnCode(t *testing.T) {
	srv := startServer(t)
	client := connect(t, srv)
	ctx := context.Background()

	// deleteProject answers with a bare ReturnCode.
	srv.SetReturnCode("SherlockProjectService", "deleteProject", -1, "no such project")
	err := client.Project.DeleteProject(ctx, "Test")
	var apiErr *sherlock.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "no such project", apiErr.Message)

	// createLifePhase wraps its return code in a larger response.
	srv.SetReturnCode("SherlockLifeCycleService", "createLifePhase", -1, "phase exists")
	err = client.Lifecycle.CreateLifePhase(ctx, sherlock.LifePhase{
		Project: "Test", Phase: "P", Duration: 1, NumOfCycles: 1,
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "phase exists", apiErr.Message)
}

func TestSetError(t *testing.T) {
	srv := startServer(t)
	client := connect(t, srv)

	srv.SetError("SherlockProjectService", "deleteProject",
		codes.PermissionDenied, "locked", "PROJECT_LOCKED")
	err := client.Project.DeleteProject(context.Background(), "Test")
	require.Error(t, err)
	assert.Equal(t, []string{"PROJECT_LOCKED"}, sherlock.ErrorDetails(err))
}

func TestRequestsRecorded(t *testing.T) {
	srv := startServer(t)
	client := connect(t, srv)
	ctx := context.Background()

	require.NoError(t, client.Project.DeleteProject(ctx, "First"))
	require.NoError(t, client.Project.DeleteProject(ctx, "Second"))

	reqs := srv.Requests("SherlockProjectService", "deleteProject")
	require.Len(t, reqs, 2)
	assert.Equal(t, "First", reqs[0]["project"])
	assert.Equal(t, "Second", reqs[1]["project"])

	srv.Reset()
	assert.Empty(t, srv.Requests("SherlockProjectService", "deleteProject"))
}

func TestUnknownResponseFieldFailsCall(t *testing.T) {
	srv := startServer(t)
	client := connect(t, srv)

	srv.SetResponse("SherlockProjectService", "deleteProject", map[string]any{
		"notAField": true,
	})
	assert.Error(t, client.Project.DeleteProject(context.Background(), "Test"))
}
