package sherlock

import "context"

// ProjectService manages Sherlock projects: deletion, design imports,
// and report generation.
type ProjectService struct {
	c *Client
}

// ImportODBOptions control an ODB++ archive import. A zero value imports
// nothing extra; Project and CCA names default to the archive filename on
// the server side.
type ImportODBOptions struct {
	ProcessLayerThickness bool
	IncludeOtherLayers    bool
	ProcessCutoutFile     bool
	GuessPartProperties   bool
	Project               string
	CCA                   string
}

// ImportIPC2581Options control an IPC-2581 archive import.
type ImportIPC2581Options struct {
	IncludeOtherLayers  bool
	GuessPartProperties bool
	Project             string
	CCA                 string
}

// DeleteProject deletes a project from the Sherlock server.
func (s *ProjectService) DeleteProject(ctx context.Context, project string) error {
	const op = "delete project"
	if project == "" {
		return &ArgumentError{Op: op, Message: "project name is blank"}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	var rc returnCode
	fields := map[string]any{"project": project}
	if err := s.c.invoke(ctx, op, projectService, "deleteProject", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}

// ImportODBArchive imports an ODB++ archive into a new project. The
// archive path refers to the server's filesystem.
func (s *ProjectService) ImportODBArchive(ctx context.Context, archiveFile string, opts ImportODBOptions) error {
	const op = "import ODB archive"
	if archiveFile == "" {
		return &ArgumentError{Op: op, Message: "archive file path is blank"}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	var rc returnCode
	fields := map[string]any{
		"archiveFile":           archiveFile,
		"processLayerThickness": opts.ProcessLayerThickness,
		"includeOtherLayers":    opts.IncludeOtherLayers,
		"processCutoutFile":     opts.ProcessCutoutFile,
		"guessPartProperties":   opts.GuessPartProperties,
		"project":               opts.Project,
		"ccaName":               opts.CCA,
	}
	if err := s.c.invoke(ctx, op, projectService, "importODBArchive", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}

// ImportIPC2581Archive imports an IPC-2581 archive into a new project.
func (s *ProjectService) ImportIPC2581Archive(ctx context.Context, archiveFile string, opts ImportIPC2581Options) error {
	const op = "import IPC2581 archive"
	if archiveFile == "" {
		return &ArgumentError{Op: op, Message: "archive file path is blank"}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	var rc returnCode
	fields := map[string]any{
		"archiveFile":         archiveFile,
		"includeOtherLayers":  opts.IncludeOtherLayers,
		"guessPartProperties": opts.GuessPartProperties,
		"project":             opts.Project,
		"ccaName":             opts.CCA,
	}
	if err := s.c.invoke(ctx, op, projectService, "importIPC2581Archive", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}

// GenerateProjectReport asks the server to write a full project report to
// reportFile on the server's filesystem. Requires Sherlock 231 or later.
func (s *ProjectService) GenerateProjectReport(ctx context.Context, project, author, company, reportFile string) error {
	const op = "generate project report"
	if err := s.c.requireVersion(op, 231); err != nil {
		return err
	}
	switch {
	case project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case author == "":
		return &ArgumentError{Op: op, Message: "author name is blank"}
	case company == "":
		return &ArgumentError{Op: op, Message: "company name is blank"}
	case reportFile == "":
		return &ArgumentError{Op: op, Message: "report file path is blank"}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	var rc returnCode
	fields := map[string]any{
		"project":    project,
		"author":     author,
		"company":    company,
		"reportFile": reportFile,
	}
	if err := s.c.invoke(ctx, op, projectService, "genReport", fields, &rc); err != nil {
		return err
	}
	return s.c.finish(op, rc, nil)
}
