package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gosherlock/sherlock/pkg/sherlock"
)

// analysisJob is the YAML shape accepted by run-analysis.
type analysisJob struct {
	Project  string `yaml:"project"`
	CCA      string `yaml:"cca"`
	Analyses []struct {
		Type   string `yaml:"type"`
		Phases []struct {
			Name   string   `yaml:"name"`
			Events []string `yaml:"events"`
		} `yaml:"phases"`
	} `yaml:"analyses"`
}

var runAnalysisFile string

var runAnalysisCmd = &cobra.Command{
	Use:   "run-analysis",
	Short: "Run analyses described by a YAML job file",
	Long: `Run analyses described by a YAML job file.

The job file names the project, the CCA, and the analyses to run:

    project: Test
    cca: Card
    analyses:
      - type: NATURALFREQ
        phases:
          - name: Phase 1
            events: [Event 1]`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(runAnalysisFile)
		if err != nil {
			return err
		}
		var job analysisJob
		if err := yaml.Unmarshal(data, &job); err != nil {
			return fmt.Errorf("%s: %w", runAnalysisFile, err)
		}

		runs := make([]sherlock.AnalysisRun, 0, len(job.Analyses))
		for _, a := range job.Analyses {
			run := sherlock.AnalysisRun{Type: sherlock.AnalysisType(a.Type)}
			for _, p := range a.Phases {
				run.Phases = append(run.Phases, sherlock.AnalysisPhase{
					Name:   p.Name,
					Events: p.Events,
				})
			}
			runs = append(runs, run)
		}

		client, err := connectClient()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx, cancel := callContext()
		defer cancel()

		if err := client.Analysis.RunAnalysis(ctx, job.Project, job.CCA, runs); err != nil {
			return err
		}
		fmt.Printf("analysis complete for %s/%s\n", job.Project, job.CCA)
		return nil
	},
}

func init() {
	runAnalysisCmd.Flags().StringVarP(&runAnalysisFile, "file", "f", "sherlock-job.yaml", "YAML job file")
	rootCmd.AddCommand(runAnalysisCmd)
}
