package main

import (
	"github.com/spf13/cobra"

	"github.com/namecheck-ai/namecheck/internal/adapters/cli"
	"github.com/namecheck-ai/namecheck/internal/adapters/env"
	"github.com/namecheck-ai/namecheck/internal/core"
	"github.com/namecheck-ai/namecheck/internal/usecase"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var (
		outDir  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every section as static HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, app, logger, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			output := cli.NewOutput()
			if noColor {
				output.DisableColors()
			}
			output.PrintHeader("NameCheck AI export")
			output.PrintStep("", "Writing %d sections to %s", len(core.Sections()), outDir)
			report := cli.NewExportReport(output, outDir)

			pages, err := app.ExportStatic(cmd.Context(), outDir)
			report.Render(usecase.ExportOutput{Pages: pages, Error: err})
			return err
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", env.DefaultOut, "output directory")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
