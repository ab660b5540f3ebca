package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contractgate/contractgate/internal/adapters/outbound/config"
	"github.com/contractgate/contractgate/internal/adapters/outbound/revision"
	"github.com/contractgate/contractgate/internal/adapters/outbound/schemadoc"
	"github.com/contractgate/contractgate/internal/adapters/outbound/tui"
	"github.com/contractgate/contractgate/internal/application"
	"github.com/contractgate/contractgate/internal/domain"
)

func newCheckCmd() *cobra.Command {
	var (
		base       string
		path       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "check [schema-file...]",
		Short: "Verify the contract version bump covers the schema changes",
		Long:  "Classify the schema files changed since the base revision, fold them into a required bump, and fail if the contract's declared version was not bumped by at least that much. Pass explicit schema paths to skip the git diff.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewGateService(
				revision.New(),
				config.New(),
				schemadoc.New(),
			)

			report, err := svc.Run(path, base, args)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderGateReport(report))
			}

			if report.Verdict.Status == domain.StatusFail {
				return fmt.Errorf("%s (required %s, got %s)",
					report.Verdict.Message, report.Required, report.Verdict.Actual)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Base revision to diff against (defaults to config, then HEAD)")
	cmd.Flags().StringVar(&path, "path", ".", "Project path containing the contract")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")

	return cmd
}
