package sherlock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerIDValidation(t *testing.T) {
	tests := []struct {
		name    string
		layer   string
		wantMsg string
	}{
		{"valid", "3", ""},
		{"zero allowed", "0", ""},
		{"blank", "", "missing conductor layer ID"},
		{"not numeric", "three", "invalid layer ID, layer ID must be numeric"},
		{"negative", "-2", "invalid layer ID provided, it must be an integer greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkLayerID("update conductor layer", tt.layer, "conductor")
			if tt.wantMsg == "" {
				assert.NoError(t, err)
			} else {
				requireArgumentError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestConductorPercentValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"blank leaves unchanged", "", ""},
		{"valid", "94.2", ""},
		{"zero", "0", ""},
		{"hundred", "100", ""},
		{"not numeric", "most", "invalid percent, percent must be numeric"},
		{"negative", "-5", "invalid conductor percent provided, it must be between 0 and 100"},
		{"over 100", "100.5", "invalid conductor percent provided, it must be between 0 and 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkConductorPercent("update conductor layer", tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
			} else {
				requireArgumentError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestGenStackup(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetResponse("SherlockStackupService", "listLaminateThicknessUnits", map[string]any{
		"unit": []string{"mm", "mils", "micron", "inches"},
	})
	ctx := context.Background()

	stackup := Stackup{
		Project: "Test", CCA: "Card",
		BoardThickness: 82.6, BoardThicknessUnit: "mils",
		PCBMaterialManufacturer: "Generic", PCBMaterialGrade: "FR-4", PCBMaterial: "Generic FR-4",
		ConductorLayersCnt:   4,
		SignalLayerThickness: 1, SignalLayerThicknessUnit: "oz",
		MinLaminateThickness: 5, MinLaminateThicknessUnit: "mils",
		MaintainSymmetry:    true,
		PowerLayerThickness: 2, PowerLayerThicknessUnit: "oz",
	}
	require.NoError(t, client.Stackup.GenStackup(ctx, stackup))

	reqs := srv.Requests("SherlockStackupService", "genStackup")
	require.Len(t, reqs, 1)
	assert.Equal(t, float64(4), reqs[0]["conductorLayersCnt"])
	assert.Equal(t, true, reqs[0]["maintainSymmetry"])

	bad := stackup
	bad.ConductorLayersCnt = 1
	requireArgumentError(t, client.Stackup.GenStackup(ctx, bad),
		"the number of conductor layers must be greater than 1")

	bad = stackup
	bad.BoardThicknessUnit = "cubits"
	requireArgumentError(t, client.Stackup.GenStackup(ctx, bad),
		"invalid board thickness unit provided")

	// "oz" is only valid for conductor and power layers.
	bad = stackup
	bad.MinLaminateThicknessUnit = "oz"
	requireArgumentError(t, client.Stackup.GenStackup(ctx, bad),
		"invalid laminate thickness unit provided")
}

func TestGenStackupMaterialCatalog(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetResponse("SherlockStackupService", "listLaminateMaterialsManufacturers", map[string]any{
		"manufacturer": []string{"Generic", "Isola"},
	})
	srv.SetResponse("SherlockStackupService", "listLaminateMaterials", map[string]any{
		"manufacturerMaterials": []map[string]any{{
			"manufacturer": "Generic",
			"gradeMaterials": []map[string]any{{
				"grade":            "FR-4",
				"laminateMaterial": []string{"Generic FR-4", "Generic FR-4 HighTg"},
			}},
		}},
	})
	ctx := context.Background()

	stackup := Stackup{
		Project: "Test", CCA: "Card", ConductorLayersCnt: 4,
		PCBMaterialManufacturer: "Generic", PCBMaterialGrade: "FR-4", PCBMaterial: "Generic FR-4",
	}
	require.NoError(t, client.Stackup.GenStackup(ctx, stackup))

	bad := stackup
	bad.PCBMaterialManufacturer = "Acme"
	requireArgumentError(t, client.Stackup.GenStackup(ctx, bad),
		"invalid laminate manufacturer provided")

	bad = stackup
	bad.PCBMaterialGrade = "FR-5"
	requireArgumentError(t, client.Stackup.GenStackup(ctx, bad),
		"invalid laminate grade provided")

	bad = stackup
	bad.PCBMaterial = "Mystery Laminate"
	requireArgumentError(t, client.Stackup.GenStackup(ctx, bad),
		"invalid laminate material provided")
}

func TestUpdateConductorLayer(t *testing.T) {
	client, srv := newTestClient(t)
	ctx := context.Background()

	layer := ConductorLayer{
		Project: "Test", CCA: "Card", Layer: "3",
		Type: "POWER", Material: "COPPER",
		Thickness: 1, ThicknessUnit: "oz",
		ConductorPercent: "94.2",
	}
	require.NoError(t, client.Stackup.UpdateConductorLayer(ctx, layer))

	reqs := srv.Requests("SherlockStackupService", "updateConductorLayer")
	require.Len(t, reqs, 1)
	assert.Equal(t, "3", reqs[0]["layer"])
	assert.Equal(t, "POWER", reqs[0]["type"])

	bad := layer
	bad.Type = "GROUND"
	requireArgumentError(t, client.Stackup.UpdateConductorLayer(ctx, bad),
		`invalid conductor type provided, valid values are "SIGNAL", "POWER", or "SUBSTRATE"`)

	bad = layer
	bad.Thickness = -1
	requireArgumentError(t, client.Stackup.UpdateConductorLayer(ctx, bad),
		"invalid conductor thickness provided")
}

func TestUpdateLaminateLayer(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetResponse("SherlockStackupService", "listConstructionStyles", map[string]any{
		"constructionStyle": []string{"106", "1080", "2113"},
	})
	srv.SetResponse("SherlockStackupService", "listFiberMaterials", map[string]any{
		"fiberMaterial": []string{"E-GLASS", "S-GLASS"},
	})
	ctx := context.Background()

	layer := LaminateLayer{
		Project: "Test", CCA: "Card", Layer: "2",
		Thickness: 0.015, ThicknessUnit: "in",
		ConstructionStyle: "106",
		GlassConstruction: []GlassConstruction{{Style: "106", ResinPercentage: 68, Thickness: 0.015, ThicknessUnit: "in"}},
		FiberMaterial:     "E-GLASS",
	}
	// Thickness unit list is unavailable here, so only list-backed checks run.
	require.NoError(t, client.Stackup.UpdateLaminateLayer(ctx, layer))

	reqs := srv.Requests("SherlockStackupService", "updateLaminate")
	require.Len(t, reqs, 1)
	glass := reqs[0]["glassConstruction"].([]any)
	require.Len(t, glass, 1)
	assert.Equal(t, "106", glass[0].(map[string]any)["style"])

	bad := layer
	bad.ConstructionStyle = "9999"
	requireArgumentError(t, client.Stackup.UpdateLaminateLayer(ctx, bad),
		"invalid construction style")

	bad = layer
	bad.FiberMaterial = "CARBON"
	requireArgumentError(t, client.Stackup.UpdateLaminateLayer(ctx, bad),
		"invalid fiber material")

	bad = layer
	bad.GlassConstruction = []GlassConstruction{{Style: "106", Thickness: -1}}
	requireArgumentError(t, client.Stackup.UpdateLaminateLayer(ctx, bad),
		"invalid layer 0: invalid glass construction thickness provided")
}
