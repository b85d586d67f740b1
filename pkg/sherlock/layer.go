package sherlock

import (
	"context"
	"os"
)

// LayerService manages CCA layer views, such as mount points.
type LayerService struct {
	c *Client
}

// UpdateMountPointsByFile updates the mount point properties of a CCA
// from a CSV file. The file must exist locally; the path is passed to the
// server, which reads it from the same machine.
func (s *LayerService) UpdateMountPointsByFile(ctx context.Context, project, cca, filePath string) error {
	const op = "update mount points by file"
	switch {
	case project == "":
		return &ArgumentError{Op: op, Message: "project name is blank"}
	case cca == "":
		return &ArgumentError{Op: op, Message: "CCA name is blank"}
	case filePath == "":
		return &ArgumentError{Op: op, Message: "file path is blank"}
	}
	if _, err := os.Stat(filePath); err != nil {
		return &ArgumentError{Op: op, Message: "file path does not exist"}
	}
	if err := s.c.checkConnection(ctx, op); err != nil {
		return err
	}
	var resp struct {
		ReturnCode  returnCode `json:"returnCode"`
		UpdateError []string   `json:"updateError"`
	}
	fields := map[string]any{
		"project":  project,
		"ccaName":  cca,
		"filePath": filePath,
	}
	if err := s.c.invoke(ctx, op, layerService, "updateMountPoints", fields, &resp); err != nil {
		return err
	}
	return s.c.finish(op, resp.ReturnCode, resp.UpdateError)
}
