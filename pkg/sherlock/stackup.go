package sherlock

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// Conductor layer types.
var layerTypes = []string{"SIGNAL", "POWER", "SUBSTRATE"}

// Stackup describes a generated stackup for a CCA.
type Stackup struct {
	Project                  string
	CCA                      string
	BoardThickness           float64
	BoardThicknessUnit       string
	PCBMaterialManufacturer  string
	PCBMaterialGrade         string
	PCBMaterial              string
	ConductorLayersCnt       int32
	SignalLayerThickness     float64
	SignalLayerThicknessUnit string
	MinLaminateThickness     float64
	MinLaminateThicknessUnit string
	MaintainSymmetry         bool
	PowerLayerThickness      float64
	PowerLayerThicknessUnit  string
}

// ConductorLayer describes an update to one conductor layer. Blank string
// fields leave the corresponding property unchanged.
type ConductorLayer struct {
	Project string
	CCA     string
	// Layer is the layer ID, a positive integer rendered as a string.
	Layer string
	// Type is "SIGNAL", "POWER", or "SUBSTRATE".
	Type          string
	Material      string
	Thickness     float64
	ThicknessUnit string
	// ConductorPercent is a percentage in [0, 100] rendered as a string.
	ConductorPercent string
	ResinMaterial    string
}

// GlassConstruction is one glass construction layer of a laminate.
type GlassConstruction struct {
	Style           string
	ResinPercentage float64
	Thickness       float64
	ThicknessUnit   string
}

// LaminateLayer describes an update to one laminate layer.
type LaminateLayer struct {
	Project string
	CCA     string
	Layer   string
	// Manufacturer, Grade, and Material select the laminate material; when
	// Manufacturer is blank the material is left unchanged.
	Manufacturer      string
	Grade             string
	Material          string
	Thickness         float64
	ThicknessUnit     string
	ConstructionStyle string
	GlassConstruction []GlassConstruction
	// FiberMaterial only applies when a construction style is selected.
	FiberMaterial     string
	ConductorMaterial string
	ConductorPercent  string
}

// StackupService manages PCB stackups: generation and per-layer updates.
type StackupService struct {
	c *Client

	mu                     sync.Mutex
	laminateThicknessUnits []string
	laminateManufacturers  []string
	conductorMaterials     []string
	constructionStyles     []string
	fiberMaterials         []string
}

func (s *StackupService) cachedList(ctx context.Context, cache *[]string, method, field string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if *cache == nil {
		*cache = s.c.fetchList(ctx, stackupService, method, field)
	}
	return *cache
}

func (s *StackupService) laminateThicknessUnitList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.laminateThicknessUnits, "listLaminateThicknessUnits", "unit")
}

func (s *StackupService) laminateManufacturerList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.laminateManufacturers, "listLaminateMaterialsManufacturers", "manufacturer")
}

func (s *StackupService) conductorMaterialList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.conductorMaterials, "listConductorMaterials", "conductorMaterial")
}

func (s *StackupService) constructionStyleList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.constructionStyles, "listConstructionStyles", "constructionStyle")
}

func (s *StackupService) fiberMaterialList(ctx context.Context) []string {
	return s.cachedList(ctx, &s.fiberMaterials, "listFiberMaterials", "fiberMaterial")
}

// checkThickness validates a thickness/unit pair. Conductor and power
// layers may use "oz", which is not in the laminate unit list.
func (s *StackupService) checkThickness(ctx context.Context, op string, thickness float64, unit, spec string) error {
	if thickness < 0 {
		return &ArgumentError{Op: op, Message: "invalid " + spec + " thickness provided"}
	}
	if thickness == 0 {
		return nil
	}
	if (spec == "conductor" || spec == "power") && unit == "oz" {
		return nil
	}
	if units := s.laminateThicknessUnitList(ctx); units != nil && !contains(units, unit) {
		return &ArgumentError{Op: op, Message: "invalid " + spec + " thickness unit provided"}
	}
	return nil
}

// checkLayerID validates a layer ID string: a non-negative integer.
func checkLayerID(op, layer, spec string) error {
	if layer == "" {
		return &ArgumentError{Op: op, Message: "missing " + spec + " layer ID"}
	}
	id, err := strconv.Atoi(layer)
	if err != nil {
		return &ArgumentError{Op: op, Message: "invalid layer ID, layer ID must be numeric"}
	}
	if id < 0 {
		return &ArgumentError{Op: op, Message: "invalid layer ID provided, it must be an integer greater than 0"}
	}
	return nil
}

// checkConductorPercent validates a conductor percentage string. Blank
// means "leave unchanged".
func checkConductorPercent(op, input string) error {
	if input == "" {
		return nil
	}
	percent, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return &ArgumentError{Op: op, Message: "invalid percent, percent must be numeric"}
	}
	if percent < 0 || percent > 100 {
		return &ArgumentError{Op: op, Message: "invalid conductor percent provided, it must be between 0 and 100"}
	}
	return nil
}

// checkPCBMaterial verifies a manufacturer/grade/material triple against
// the server's laminate material catalog.
func (s *StackupService) checkPCBMaterial(ctx context.Context, op, manufacturer, grade, material string) error {
	if manufacturers := s.laminateManufacturerList(ctx); manufacturers != nil && !contains(manufacturers, manufacturer) {
		return &ArgumentError{Op: op, Message: "invalid laminate manufacturer provided"}
	}
	var resp struct {
		ReturnCode            returnCode `json:"returnCode"`
		ManufacturerMaterials []struct {
			Manufacturer   string `json:"manufacturer"`
			GradeMaterials []struct {
				Grade            string   `json:"grade"`
				LaminateMaterial []string `json:"laminateMaterial"`
			} `json:"gradeMaterials"`
		} `json:"manufacturerMaterials"`
	}
	fields := map[string]any{"manufacturer": manufacturer}
	if err := s.c.invoke(ctx, op, stackupService, "listLaminateMaterials", fields, &resp); err != nil {
		return nil // catalog unavailable, let the server decide
	}
	if resp.ReturnCode.Value != 0 || len(resp.ManufacturerMaterials) == 0 {
		return nil
	}
	for _, gm := range resp.ManufacturerMaterials[0].GradeMaterials {
		if gm.Grade == grade {
			if contains(gm.LaminateMaterial, material) {
				return nil
			}
			return &ArgumentError{Op: op, Message: "invalid laminate material provided"}
		}
	}
	return &ArgumentError{Op: op, Message: "invalid laminate grade provided"}
}

// GenStackup generates a new stackup for a CCA from the given properties.
func (s *StackupService) GenStackup(ctx context.Context, p Stackup) error {
	const op = "generate stackup"
	switch {
	case p.Project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case p.CCA == "":
		return &ArgumentError{Op: op, Message: "CCA name is blank"}
	case p.ConductorLayersCnt <= 1:
		return &ArgumentError{Op: op, Message: "the number of conductor layers must be greater than 1"}
	case p.SignalLayerThickness < 0:
		return &ArgumentError{Op: op, Message: "invalid conductor thickness provided"}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if err := s.checkThickness(ctx, op, p.BoardThickness, p.BoardThicknessUnit, "board"); err != nil {
		return err
	}
	if err := s.checkPCBMaterial(ctx, op, p.PCBMaterialManufacturer, p.PCBMaterialGrade, p.PCBMaterial); err != nil {
		return err
	}
	if err := s.checkThickness(ctx, op, p.SignalLayerThickness, p.SignalLayerThicknessUnit, "conductor"); err != nil {
		return err
	}
	if err := s.checkThickness(ctx, op, p.MinLaminateThickness, p.MinLaminateThicknessUnit, "laminate"); err != nil {
		return err
	}
	if err := s.checkThickness(ctx, op, p.PowerLayerThickness, p.PowerLayerThicknessUnit, "power"); err != nil {
		return err
	}
	var rc returnCode
	fields := map[string]any{
		"project":                  p.Project,
		"ccaName":                  p.CCA,
		"boardThickness":           p.BoardThickness,
		"boardThicknessUnit":       p.BoardThicknessUnit,
		"pcbMaterialManufacturer":  p.PCBMaterialManufacturer,
		"pcbMaterialGrade":         p.PCBMaterialGrade,
		"pcbMaterial":              p.PCBMaterial,
		"conductorLayersCnt":       p.ConductorLayersCnt,
		"signalLayerThickness":     p.SignalLayerThickness,
		"signalLayerThicknessUnit": p.SignalLayerThicknessUnit,
		"minLaminateThickness":     p.MinLaminateThickness,
		"minLaminateThicknessUnit": p.MinLaminateThicknessUnit,
		"maintainSymmetry":         p.MaintainSymmetry,
		"powerLayerThickness":      p.PowerLayerThickness,
		"powerLayerThicknessUnit":  p.PowerLayerThicknessUnit,
	}
	if err := s.c.invoke(ctx, op, stackupService, "genStackup", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}

// UpdateConductorLayer updates one conductor layer of a CCA.
func (s *StackupService) UpdateConductorLayer(ctx context.Context, p ConductorLayer) error {
	const op = "update conductor layer"
	switch {
	case p.Project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case p.CCA == "":
		return &ArgumentError{Op: op, Message: "CCA name is blank"}
	}
	if err := checkLayerID(op, p.Layer, "conductor"); err != nil {
		return err
	}
	if p.Type != "" && !contains(layerTypes, p.Type) {
		return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid conductor type provided, valid values are %q, %q, or %q", layerTypes[0], layerTypes[1], layerTypes[2])}
	}
	if err := checkConductorPercent(op, p.ConductorPercent); err != nil {
		return err
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if p.Material != "" {
		if materials := s.conductorMaterialList(ctx); materials != nil && !contains(materials, p.Material) {
			return &ArgumentError{Op: op, Message: "invalid conductor material provided"}
		}
	}
	if err := s.checkThickness(ctx, op, p.Thickness, p.ThicknessUnit, "conductor"); err != nil {
		return err
	}
	var rc returnCode
	fields := map[string]any{
		"project":          p.Project,
		"ccaName":          p.CCA,
		"layer":            p.Layer,
		"type":             p.Type,
		"material":         p.Material,
		"thickness":        p.Thickness,
		"thicknessUnit":    p.ThicknessUnit,
		"conductorPercent": p.ConductorPercent,
		"resinMaterial":    p.ResinMaterial,
	}
	if err := s.c.invoke(ctx, op, stackupService, "updateConductorLayer", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}

// UpdateLaminateLayer updates one laminate layer of a CCA.
func (s *StackupService) UpdateLaminateLayer(ctx context.Context, p LaminateLayer) error {
	const op = "update laminate layer"
	switch {
	case p.Project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case p.CCA == "":
		return &ArgumentError{Op: op, Message: "CCA name is blank"}
	}
	if err := checkLayerID(op, p.Layer, "laminate"); err != nil {
		return err
	}
	if err := checkConductorPercent(op, p.ConductorPercent); err != nil {
		return err
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	if p.Manufacturer != "" {
		if err := s.checkPCBMaterial(ctx, op, p.Manufacturer, p.Grade, p.Material); err != nil {
			return err
		}
	}
	if err := s.checkThickness(ctx, op, p.Thickness, p.ThicknessUnit, "laminate"); err != nil {
		return err
	}
	if p.ConstructionStyle != "" {
		if styles := s.constructionStyleList(ctx); styles != nil && !contains(styles, p.ConstructionStyle) {
			return &ArgumentError{Op: op, Message: "invalid construction style"}
		}
		for i, g := range p.GlassConstruction {
			if err := s.checkThickness(ctx, op, g.Thickness, g.ThicknessUnit, "glass construction"); err != nil {
				var ae *ArgumentError
				if errors.As(err, &ae) {
					return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid layer %d: %s", i, ae.Message)}
				}
				return err
			}
		}
	}
	if p.FiberMaterial != "" {
		if fibers := s.fiberMaterialList(ctx); fibers != nil && !contains(fibers, p.FiberMaterial) {
			return &ArgumentError{Op: op, Message: "invalid fiber material"}
		}
	}
	if p.ConductorMaterial != "" {
		if materials := s.conductorMaterialList(ctx); materials != nil && !contains(materials, p.ConductorMaterial) {
			return &ArgumentError{Op: op, Message: "invalid conductor material"}
		}
	}
	glass := make([]map[string]any, 0, len(p.GlassConstruction))
	for _, g := range p.GlassConstruction {
		glass = append(glass, map[string]any{
			"style":           g.Style,
			"resinPercentage": g.ResinPercentage,
			"thickness":       g.Thickness,
			"thicknessUnit":   g.ThicknessUnit,
		})
	}
	var rc returnCode
	fields := map[string]any{
		"project":           p.Project,
		"ccaName":           p.CCA,
		"layer":             p.Layer,
		"manufacturer":      p.Manufacturer,
		"grade":             p.Grade,
		"material":          p.Material,
		"thickness":         p.Thickness,
		"thicknessUnit":     p.ThicknessUnit,
		"constructionStyle": p.ConstructionStyle,
		"glassConstruction": glass,
		"fiberMaterial":     p.FiberMaterial,
		"conductorMaterial": p.ConductorMaterial,
		"conductorPercent":  p.ConductorPercent,
	}
	if err := s.c.invoke(ctx, op, stackupService, "updateLaminate", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}
