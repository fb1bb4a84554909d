package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/config"
	"github.com/deicod/springhex/internal/detect"
	"github.com/deicod/springhex/internal/generator"
	"github.com/deicod/springhex/internal/stub"
)

const initNextSteps = `
	Next steps:
	  1. Review %s and uncomment any paths you want to customise.
	  2. Generate your first aggregate: spring-hex make:aggregate Order
	  3. Wire the mediator: spring-hex make:mediator
`

func newInitCmd() *cobra.Command {
	var (
		basePackage string
		output      string
		force       bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write .hex/config.yml for the current project",
		Long: "init records the base package and the default package layout in .hex/config.yml " +
			"so every make:* command resolves them without flags.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := config.Path(output)
			if generator.Exists(path) && !force {
				return wrapError(fmt.Sprintf("init: %s already exists", path), generator.ErrFileExists,
					"Re-run with --force to overwrite it.", 1)
			}

			pkg := strings.TrimSpace(basePackage)
			if pkg == "" {
				detected, ok := detect.BasePackage(output)
				if !ok {
					return fail("init", config.ErrNoBasePackage)
				}
				pkg = detected
				fmt.Fprintf(out, "Auto-detected base package: %s\n", pkg)
			}

			content, err := stub.Process("init/config", stub.Tokens{"{{BASE_PACKAGE}}": pkg})
			if err != nil {
				return fail("init", err)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return wrapError(fmt.Sprintf("init: create directory %s", filepath.Dir(path)), err,
					"Check directory permissions or run the command from a writable project.", 1)
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return wrapError(fmt.Sprintf("init: write file %s", path), err,
					"Ensure the path is writable.", 1)
			}
			logVerbose(cmd, "base package %s, force=%t", pkg, force)
			fmt.Fprintf(out, "Created: %s\n", path)
			fmt.Fprintf(out, dedent.Dedent(initNextSteps), filepath.Join(config.Dir, config.File))
			return nil
		},
	}
	cmd.Flags().StringVarP(&basePackage, "package", "p", "", "Base package (auto-detected when omitted)")
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Project root")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")
	return cmd
}

