package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contractgate/contractgate/internal/adapters/outbound/config"
	"github.com/contractgate/contractgate/internal/adapters/outbound/revision"
	"github.com/contractgate/contractgate/internal/adapters/outbound/schemadoc"
	"github.com/contractgate/contractgate/internal/application"
)

func newClassifyCmd() *cobra.Command {
	var (
		base       string
		path       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "classify <schema-file>",
		Short: "Classify a single schema change",
		Long:  "Compare one schema file's working-tree content against the base revision and print the change severity (none/patch/minor/major).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewGateService(
				revision.New(),
				config.New(),
				schemadoc.New(),
			)

			record, err := svc.ClassifyFile(path, base, args[0])
			if err != nil {
				return fmt.Errorf("classify failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(record)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", record.Path, record.Severity)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Base revision to diff against (defaults to config, then HEAD)")
	cmd.Flags().StringVar(&path, "path", ".", "Project path containing the contract")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the record as JSON")

	return cmd
}
