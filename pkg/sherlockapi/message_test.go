package sherlockapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestScalars(t *testing.T) {
	schema, err := Load()
	require.NoError(t, err)

	m, err := schema.Lookup("SherlockLifeCycleService", "createLifePhase")
	require.NoError(t, err)

	msg, err := NewRequest(m, map[string]any{
		"project":       "Test",
		"phaseName":     "On The Road",
		"duration":      1.5,
		"durationUnits": "year",
		"numOfCycles":   4.0,
		"cycleType":     "COUNT",
	})
	require.NoError(t, err)

	got, err := ToMap(msg)
	require.NoError(t, err)
	assert.Equal(t, "Test", got["project"])
	assert.Equal(t, "On The Road", got["phaseName"])
	assert.Equal(t, 1.5, got["duration"])
	assert.Equal(t, "year", got["durationUnits"])
}

func TestNewRequestEnumByName(t *testing.T) {
	schema, err := Load()
	require.NoError(t, err)

	m, err := schema.Lookup("SherlockPartsService", "updatePartsList")
	require.NoError(t, err)

	msg, err := NewRequest(m, map[string]any{
		"project":     "Test",
		"ccaName":     "Card",
		"partLibrary": "Sherlock Part Library",
		"matching":    "Part",
		"duplication": "Ignore",
	})
	require.NoError(t, err)

	got, err := ToMap(msg)
	require.NoError(t, err)
	assert.Equal(t, "Part", got["matching"])
	assert.Equal(t, "Ignore", got["duplication"])
}

func TestNewRequestNestedRepeated(t *testing.T) {
	schema, err := Load()
	require.NoError(t, err)

	m, err := schema.Lookup("SherlockAnalysisService", "runAnalysis")
	require.NoError(t, err)

	msg, err := NewRequest(m, map[string]any{
		"project": "Test",
		"ccaName": "Card",
		"analyses": []map[string]any{
			{
				"type": "NaturalFreq",
				"phases": []map[string]any{
					{"name": "Phase 1", "events": []map[string]any{{"name": "Event 1"}}},
				},
			},
		},
	})
	require.NoError(t, err)

	got, err := ToMap(msg)
	require.NoError(t, err)
	analyses, ok := got["analyses"].([]any)
	require.True(t, ok)
	require.Len(t, analyses, 1)
	first := analyses[0].(map[string]any)
	assert.Equal(t, "NaturalFreq", first["type"])
}

func TestNewRequestUnknownField(t *testing.T) {
	schema, err := Load()
	require.NoError(t, err)

	m, err := schema.Lookup("SherlockProjectService", "deleteProject")
	require.NoError(t, err)

	_, err = NewRequest(m, map[string]any{"noSuchField": "x"})
	require.Error(t, err)
}

func TestDecodeIntoStruct(t *testing.T) {
	schema, err := Load()
	require.NoError(t, err)

	m, err := schema.Lookup("SherlockLifeCycleService", "listDurationUnits")
	require.NoError(t, err)

	// Build a response-shaped message and decode it into a typed struct.
	msg, err := buildMessage(m.Output(), map[string]any{
		"returnCode":    map[string]any{"value": -1, "message": "nope"},
		"durationUnits": []string{"sec", "min"},
	})
	require.NoError(t, err)

	var out struct {
		ReturnCode struct {
			Value   int32  `json:"value"`
			Message string `json:"message"`
		} `json:"returnCode"`
		DurationUnits []string `json:"durationUnits"`
	}
	require.NoError(t, Decode(msg, &out))
	assert.Equal(t, int32(-1), out.ReturnCode.Value)
	assert.Equal(t, "nope", out.ReturnCode.Message)
	assert.Equal(t, []string{"sec", "min"}, out.DurationUnits)
}
