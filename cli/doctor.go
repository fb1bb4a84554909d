package cli

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/cli/doctor"
)

func newDoctorCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Inspect the project for common spring-hex setup issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := doctor.Run(commandContext(cmd), output)
			printer := doctor.NewPrinter(cmd.OutOrStdout())
			printer.PrintHeader("spring-hex doctor")
			abs, err := filepath.Abs(output)
			if err != nil {
				abs = output
			}
			printer.PrintProject(abs, Version)
			for _, res := range results {
				printer.PrintCheck(res)
			}
			printer.Summary(results)
			if doctor.HasFailures(results) {
				return wrapError("doctor: one or more checks failed", errors.New("doctor checks failed"), "", 1)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Project root")
	return cmd
}
