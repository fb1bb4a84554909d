package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/naming"
	"github.com/deicod/springhex/internal/stub"
)

func newMakeTestCmd() *cobra.Command {
	var (
		opts generatorOptions
		unit bool
	)
	cmd := &cobra.Command{
		Use:   "make:test <Name>",
		Short: "Generate a feature (default) or unit test",
		Long:  "make:test writes to src/test/java under <base>.feature or <base>.unit, matching run:test --feature/--unit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:test", err)
			}
			name := naming.Capitalize(args[0])
			if !strings.HasSuffix(name, "Test") {
				name += "Test"
			}
			scope, stubName := "feature", "test/feature-test"
			if unit {
				scope, stubName = "unit", "test/unit-test"
			}
			pkg := s.cfg.BasePackage + "." + scope
			tokens := stub.Tokens{"{{TEST_PACKAGE}}": pkg, "{{TEST_NAME}}": name}
			if err := s.writeTo(layout.TestOutputPath(opts.output, name, pkg), stubName, pkg, tokens); err != nil {
				return fail("make:test", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s test generated successfully!\n", naming.Capitalize(scope))
			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().BoolVar(&unit, "unit", false, "Generate a unit test instead of a feature test")
	return cmd
}
