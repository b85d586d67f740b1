package sherlock

import (
	"context"
	"os"
	"path/filepath"
)

// TraceReinforcementModelExport describes a trace reinforcement model
// export.
type TraceReinforcementModelExport struct {
	Project string
	CCA     string
	// ExportFile is the full path of the model file the server writes.
	ExportFile string
	Overwrite  bool
	// DisplayModel opens the model in the Sherlock client after export.
	DisplayModel bool
	// ClearFEADatabase clears the FEA database before the export.
	ClearFEADatabase bool
}

// ModelService exports FEA models from project data.
type ModelService struct {
	c *Client
}

// ExportTraceReinforcementModel exports a trace reinforcement model for a
// CCA. Requires Sherlock 231 or later.
func (s *ModelService) ExportTraceReinforcementModel(ctx context.Context, p TraceReinforcementModelExport) error {
	const op = "export trace reinforcement model"
	if err := s.c.requireVersion(op, 231); err != nil {
		return err
	}
	switch {
	case p.Project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case p.CCA == "":
		return &ArgumentError{Op: op, Message: "CCA name is blank"}
	case p.ExportFile == "":
		return &ArgumentError{Op: op, Message: "export file path is blank"}
	}
	if dir := filepath.Dir(p.ExportFile); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return &ArgumentError{Op: op, Message: "export file directory does not exist"}
		}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	var rc returnCode
	fields := map[string]any{
		"project":          p.Project,
		"ccaName":          p.CCA,
		"exportFile":       p.ExportFile,
		"overwrite":        p.Overwrite,
		"displayModel":     p.DisplayModel,
		"clearFEADatabase": p.ClearFEADatabase,
	}
	if err := s.c.invoke(ctx, op, modelService, "exportTraceReinforcementModel", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}
