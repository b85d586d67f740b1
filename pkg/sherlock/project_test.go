package sherlock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportODBArchive(t *testing.T) {
	client, srv := newTestClient(t)

	err := client.Project.ImportODBArchive(context.Background(), "/data/Tutorial.tgz", ImportODBOptions{
		ProcessLayerThickness: true,
		ProcessCutoutFile:     true,
		Project:               "Tutorial",
		CCA:                   "Main Board",
	})
	require.NoError(t, err)

	reqs := srv.Requests("SherlockProjectService", "importODBArchive")
	require.Len(t, reqs, 1)
	assert.Equal(t, "/data/Tutorial.tgz", reqs[0]["archiveFile"])
	assert.Equal(t, true, reqs[0]["processLayerThickness"])
	assert.Equal(t, true, reqs[0]["processCutoutFile"])
	assert.Equal(t, "Tutorial", reqs[0]["project"])
	assert.Equal(t, "Main Board", reqs[0]["ccaName"])
}

func TestImportODBArchiveBlankPath(t *testing.T) {
	client, srv := newTestClient(t)

	err := client.Project.ImportODBArchive(context.Background(), "", ImportODBOptions{})
	requireArgumentError(t, err, "archive file path is blank")
	assert.Empty(t, srv.Requests("SherlockProjectService", "importODBArchive"))
}

func TestImportIPC2581Archive(t *testing.T) {
	client, srv := newTestClient(t)

	err := client.Project.ImportIPC2581Archive(context.Background(), "/data/Design.zip", ImportIPC2581Options{
		IncludeOtherLayers:  true,
		GuessPartProperties: true,
		Project:             "Design",
		CCA:                 "Card",
	})
	require.NoError(t, err)

	reqs := srv.Requests("SherlockProjectService", "importIPC2581Archive")
	require.Len(t, reqs, 1)
	assert.Equal(t, "/data/Design.zip", reqs[0]["archiveFile"])
	assert.Equal(t, true, reqs[0]["includeOtherLayers"])
	assert.Equal(t, true, reqs[0]["guessPartProperties"])
	assert.Equal(t, "Design", reqs[0]["project"])
	assert.Equal(t, "Card", reqs[0]["ccaName"])
}

func TestImportIPC2581ArchiveBlankPath(t *testing.T) {
	client, srv := newTestClient(t)

	err := client.Project.ImportIPC2581Archive(context.Background(), "", ImportIPC2581Options{})
	requireArgumentError(t, err, "archive file path is blank")
	assert.Empty(t, srv.Requests("SherlockProjectService", "importIPC2581Archive"))
}

func TestGenerateProjectReport(t *testing.T) {
	client, srv := newTestClient(t)

	err := client.Project.GenerateProjectReport(context.Background(), "Tutorial", "jsmith", "Acme", "/tmp/report.pdf")
	require.NoError(t, err)

	reqs := srv.Requests("SherlockProjectService", "genReport")
	require.Len(t, reqs, 1)
	assert.Equal(t, "Tutorial", reqs[0]["project"])
	assert.Equal(t, "jsmith", reqs[0]["author"])
	assert.Equal(t, "Acme", reqs[0]["company"])
	assert.Equal(t, "/tmp/report.pdf", reqs[0]["reportFile"])
}

func TestGenerateProjectReportValidation(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name                              string
		project, author, company, outFile string
		wantMsg                           string
	}{
		{"blank project", "", "jsmith", "Acme", "r.pdf", "project name is blank"},
		{"blank author", "Tutorial", "", "Acme", "r.pdf", "author name is blank"},
		{"blank company", "Tutorial", "jsmith", "", "r.pdf", "company name is blank"},
		{"blank report file", "Tutorial", "jsmith", "Acme", "", "report file path is blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.Project.GenerateProjectReport(ctx, tt.project, tt.author, tt.company, tt.outFile)
			requireArgumentError(t, err, tt.wantMsg)
		})
	}
}
