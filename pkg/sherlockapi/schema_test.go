package sherlockapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	schema, err := Load()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// Load is cached.
	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, schema, again)
}

func TestSchemaServices(t *testing.T) {
	schema, err := Load()
	require.NoError(t, err)

	want := []string{
		"SherlockCommonService",
		"SherlockProjectService",
		"SherlockLifeCycleService",
		"SherlockPartsService",
		"SherlockStackupService",
		"SherlockLayerService",
		"SherlockModelService",
		"SherlockAnalysisService",
	}
	got := schema.Services()
	for _, svc := range want {
		assert.Contains(t, got, svc)
		assert.NotNil(t, schema.Service(svc))
	}
	assert.Nil(t, schema.Service("NoSuchService"))
}

func TestSchemaLookup(t *testing.T) {
	schema, err := Load()
	require.NoError(t, err)

	tests := []struct {
		service string
		method  string
		path    string
		input   string
		output  string
	}{
		{"SherlockCommonService", "check", "/SherlockCommonService/check", "HealthCheckRequest", "HealthCheckResponse"},
		{"SherlockCommonService", "exit", "/SherlockCommonService/exit", "ExitRequest", "ReturnCode"},
		{"SherlockProjectService", "deleteProject", "/SherlockProjectService/deleteProject", "DeleteProjectRequest", "ReturnCode"},
		{"SherlockLifeCycleService", "addRandomVibeProfile", "/SherlockLifeCycleService/addRandomVibeProfile", "AddRandomVibeProfileRequest", "AddRandomVibeProfileResponse"},
		{"SherlockAnalysisService", "runAnalysis", "/SherlockAnalysisService/runAnalysis", "RunAnalysisRequest", "ReturnCode"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, err := schema.Lookup(tt.service, tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.path, m.RPCPath())
			assert.Equal(t, tt.input, string(m.Input().Name()))
			assert.Equal(t, tt.output, string(m.Output().Name()))
		})
	}
}

func TestSchemaLookupNotFound(t *testing.T) {
	schema, err := Load()
	require.NoError(t, err)

	_, err = schema.Lookup("NoSuchService", "check")
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "NoSuchService", nfe.Service)

	_, err = schema.Lookup("SherlockCommonService", "noSuchMethod")
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "noSuchMethod", nfe.Method)
}

func TestSchemaMethodCount(t *testing.T) {
	schema, err := Load()
	require.NoError(t, err)
	// All services together carry a substantial method surface; the exact
	// count grows with the IDL.
	assert.Greater(t, schema.MethodCount(), 30)
}
