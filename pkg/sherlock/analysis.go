package sherlock

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// AnalysisType is an analysis type keyword accepted by RunAnalysis.
type AnalysisType string

// Analysis types.
const (
	AnalysisNaturalFreq          AnalysisType = "NATURALFREQ"
	AnalysisHarmonicVibe         AnalysisType = "HARMONICVIBE"
	AnalysisICT                  AnalysisType = "ICTANALYSIS"
	AnalysisMechanicalShock      AnalysisType = "MECHANICALSHOCK"
	AnalysisRandomVibe           AnalysisType = "RANDOMVIBE"
	AnalysisComponentFailureMode AnalysisType = "COMPONENTFAILUREMODE"
	AnalysisDFMEAModule          AnalysisType = "DFMEAMODULE"
	AnalysisPTHFatigue           AnalysisType = "PTHFATIGUE"
	AnalysisPartValidation       AnalysisType = "PARTVALIDATION"
	AnalysisSemiconductorWearout AnalysisType = "SEMICONDUCTORWEAROUT"
	AnalysisSolderJointFatigue   AnalysisType = "SOLDERJOINTFATIGUE"
	AnalysisThermalDerating      AnalysisType = "THERMALDERATING"
	AnalysisThermalMech          AnalysisType = "THERMALMECH"
)

// analysisTypeNames maps keywords to the wire enum value names.
var analysisTypeNames = map[AnalysisType]string{
	"UNKNOWN":                    "UNKNOWN",
	AnalysisNaturalFreq:          "NaturalFreq",
	AnalysisHarmonicVibe:         "HarmonicVibe",
	AnalysisICT:                  "ICTAnalysis",
	AnalysisMechanicalShock:      "MechanicalShock",
	AnalysisRandomVibe:           "RandomVibe",
	AnalysisComponentFailureMode: "ComponentFailureMode",
	AnalysisDFMEAModule:          "DFMEAModule",
	AnalysisPTHFatigue:           "PTHFatigue",
	AnalysisPartValidation:       "PartValidation",
	AnalysisSemiconductorWearout: "SemiconductorWearout",
	AnalysisSolderJointFatigue:   "SolderJointFatigue",
	AnalysisThermalDerating:      "ThermalDerating",
	AnalysisThermalMech:          "ThermalMech",
}

// randomVibeFieldNames maps the server's random vibe property field names
// to the RandomVibeProps struct field names.
var randomVibeFieldNames = map[string]string{
	"randomVibeDamping":                "RandomVibeDamping",
	"naturalFreqMin":                   "NaturalFreqMin",
	"naturalFreqMinUnits":              "NaturalFreqMinUnits",
	"naturalFreqMax":                   "NaturalFreqMax",
	"naturalFreqMaxUnits":              "NaturalFreqMaxUnits",
	"analysisTemp":                     "AnalysisTemp",
	"analysisTempUnits":                "AnalysisTempUnits",
	"partValidationEnabled":            "PartValidationEnabled",
	"forceModelRebuild":                "ForceModelRebuild",
	"reuseModalAnalysis":               "ReuseModalAnalysis",
	"performNFFreqRangeCheck":          "PerformNFFreqRangeCheck",
	"requireMaterialAssignmentEnabled": "RequireMaterialAssignmentEnabled",
}

// AnalysisPhase selects the life cycle events of one phase for an
// analysis run.
type AnalysisPhase struct {
	Name   string
	Events []string
}

// AnalysisRun selects one analysis to run and the phases it covers.
type AnalysisRun struct {
	Type   AnalysisType
	Phases []AnalysisPhase
}

// RandomVibeProps updates the random vibe analysis properties of a CCA.
// Blank string fields leave the corresponding property unchanged.
type RandomVibeProps struct {
	Project string
	CCA     string
	// RandomVibeDamping holds modal damping ratios, comma separated.
	RandomVibeDamping   string
	NaturalFreqMin      float64
	NaturalFreqMinUnits string
	NaturalFreqMax      float64
	NaturalFreqMaxUnits string
	AnalysisTemp        float64
	AnalysisTempUnits   string
	// ForceModelRebuild is "FORCE" or "AUTO".
	ForceModelRebuild                string
	PartValidationEnabled            bool
	ReuseModalAnalysis               bool
	PerformNFFreqRangeCheck          bool
	RequireMaterialAssignmentEnabled bool
}

// AnalysisService runs analyses and manages their properties.
type AnalysisService struct {
	c *Client

	mu        sync.Mutex
	freqUnits []string
	tempUnits []string
}

func (s *AnalysisService) freqUnitList(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.freqUnits == nil {
		s.freqUnits = s.c.fetchList(ctx, lifeCycleService, "listFreqUnits", "freqUnits")
	}
	return s.freqUnits
}

func (s *AnalysisService) tempUnitList(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tempUnits == nil {
		s.tempUnits = s.c.fetchList(ctx, lifeCycleService, "listTempUnits", "tempUnits")
	}
	return s.tempUnits
}

// RunAnalysis runs one or more analyses on a CCA. This is a blocking
// call; pass a context with a generous deadline, analyses can take
// minutes.
func (s *AnalysisService) RunAnalysis(ctx context.Context, project, cca string, analyses []AnalysisRun) error {
	const op = "run analysis"
	switch {
	case project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case cca == "":
		return &ArgumentError{Op: op, Message: "CCA name is blank"}
	case len(analyses) == 0:
		return &ArgumentError{Op: op, Message: "missing one or more analyses"}
	}
	wire := make([]map[string]any, 0, len(analyses))
	for i, a := range analyses {
		name, ok := analysisTypeNames[AnalysisType(strings.ToUpper(string(a.Type)))]
		if !ok {
			return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid analysis %d: invalid analysis type provided", i)}
		}
		phases := make([]map[string]any, 0, len(a.Phases))
		for j, p := range a.Phases {
			if p.Name == "" {
				return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid analysis %d: invalid phase %d: phase name is blank", i, j)}
			}
			events := make([]map[string]any, 0, len(p.Events))
			for _, e := range p.Events {
				if e == "" {
					return &ArgumentError{Op: op, Message: fmt.Sprintf("invalid analysis %d: invalid phase %d: event name is blank", i, j)}
				}
				events = append(events, map[string]any{"name": e})
			}
			phases = append(phases, map[string]any{"name": p.Name, "events": events})
		}
		wire = append(wire, map[string]any{"type": name, "phases": phases})
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	var rc returnCode
	fields := map[string]any{
		"project":  project,
		"ccaName":  cca,
		"analyses": wire,
	}
	if err := s.c.invoke(ctx, op, analysisService, "runAnalysis", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}

// GetRandomVibeInputFields reports which random vibe properties apply to
// the current server configuration, named after RandomVibeProps fields.
func (s *AnalysisService) GetRandomVibeInputFields(ctx context.Context) ([]string, error) {
	const op = "get random vibe input fields"
	if err := s.c.checkConnection(ctx, op); err != nil {
		return nil, err
	}
	var resp struct {
		FieldName []string `json:"fieldName"`
	}
	if err := s.c.invoke(ctx, op, analysisService, "getRandomVibeInputFields", nil, &resp); err != nil {
		return nil, err
	}
	fields := make([]string, 0, len(resp.FieldName))
	for _, name := range resp.FieldName {
		if goName, ok := randomVibeFieldNames[name]; ok {
			fields = append(fields, goName)
		} else {
			fields = append(fields, name)
		}
	}
	return fields, nil
}

// UpdateRandomVibeProps updates the random vibe analysis properties of a
// CCA.
func (s *AnalysisService) UpdateRandomVibeProps(ctx context.Context, p RandomVibeProps) error {
	const op = "update random vibe properties"
	switch {
	case p.Project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case p.CCA == "":
		return &ArgumentError{Op: op, Message: "CCA name is blank"}
	}
	if p.RandomVibeDamping != "" {
		for _, v := range strings.Split(p.RandomVibeDamping, ",") {
			if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
				return &ArgumentError{Op: op, Message: "invalid random vibe damping value: " + strings.TrimSpace(v)}
			}
		}
	}
	switch p.ForceModelRebuild {
	case "", "FORCE", "AUTO":
	default:
		return &ArgumentError{Op: op, Message: "invalid force model rebuild value: " + p.ForceModelRebuild}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	freqUnits := s.freqUnitList(ctx)
	if p.NaturalFreqMinUnits != "" && freqUnits != nil && !contains(freqUnits, p.NaturalFreqMinUnits) {
		return &ArgumentError{Op: op, Message: "invalid min natural freq unit specified: " + p.NaturalFreqMinUnits}
	}
	if p.NaturalFreqMaxUnits != "" && freqUnits != nil && !contains(freqUnits, p.NaturalFreqMaxUnits) {
		return &ArgumentError{Op: op, Message: "invalid max natural freq unit specified: " + p.NaturalFreqMaxUnits}
	}
	if tempUnits := s.tempUnitList(ctx); p.AnalysisTempUnits != "" && tempUnits != nil && !contains(tempUnits, p.AnalysisTempUnits) {
		return &ArgumentError{Op: op, Message: "invalid analysis temperature unit specified: " + p.AnalysisTempUnits}
	}
	var rc returnCode
	fields := map[string]any{
		"project":                          p.Project,
		"ccaName":                          p.CCA,
		"randomVibeDamping":                p.RandomVibeDamping,
		"naturalFreqMin":                   p.NaturalFreqMin,
		"naturalFreqMinUnits":              p.NaturalFreqMinUnits,
		"naturalFreqMax":                   p.NaturalFreqMax,
		"naturalFreqMaxUnits":              p.NaturalFreqMaxUnits,
		"analysisTemp":                     p.AnalysisTemp,
		"analysisTempUnits":                p.AnalysisTempUnits,
		"partValidationEnabled":            p.PartValidationEnabled,
		"forceModelRebuild":                p.ForceModelRebuild,
		"reuseModalAnalysis":               p.ReuseModalAnalysis,
		"performNFFreqRangeCheck":          p.PerformNFFreqRangeCheck,
		"requireMaterialAssignmentEnabled": p.RequireMaterialAssignmentEnabled,
	}
	if err := s.c.invoke(ctx, op, analysisService, "updateRandomVibeProps", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}
