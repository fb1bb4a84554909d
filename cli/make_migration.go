package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/detect"
	"github.com/deicod/springhex/internal/generator"
	"github.com/deicod/springhex/internal/naming"
	"github.com/deicod/springhex/internal/stub"
)

var now = time.Now

var liquibaseFormats = []string{"xml", "yaml", "sql"}

func newMakeMigrationCmd() *cobra.Command {
	var (
		output    string
		flyway    bool
		liquibase bool
		format    string
	)
	cmd := &cobra.Command{
		Use:   "make:migration <name>",
		Short: "Generate a Flyway or Liquibase migration",
		Long: "make:migration writes a timestamped migration for the detected migration tool. " +
			"Liquibase changesets are registered in the master changelog, which is created on first use.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flyway && liquibase {
				return wrapError("make:migration: --flyway and --liquibase are mutually exclusive", nil,
					"Pass at most one of --flyway or --liquibase.", 1)
			}
			tool := detect.Flyway
			switch {
			case flyway:
			case liquibase:
				tool = detect.Liquibase
			default:
				detected, err := detect.DetectMigrationTool(output)
				if err != nil {
					return wrapError("make:migration: could not auto-detect migration tool", err,
						"Use --flyway or --liquibase.", 1)
				}
				tool = detected
				fmt.Fprintf(cmd.OutOrStdout(), "Auto-detected migration tool: %s\n", tool)
			}
			m := migrationWriter{cmd: cmd, dir: output, name: args[0], at: now()}
			var err error
			if tool == detect.Flyway {
				err = m.flyway()
			} else {
				err = m.liquibase(format)
			}
			if err != nil {
				return fail("make:migration", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Project root")
	cmd.Flags().BoolVar(&flyway, "flyway", false, "Force a Flyway migration")
	cmd.Flags().BoolVar(&liquibase, "liquibase", false, "Force a Liquibase changeset")
	cmd.Flags().StringVar(&format, "format", "xml", "Liquibase changeset format: xml, yaml or sql")
	return cmd
}

type migrationWriter struct {
	cmd  *cobra.Command
	dir  string
	name string
	at   time.Time
}

func (m migrationWriter) tokens() stub.Tokens {
	return stub.Tokens{
		"{{MIGRATION_NAME}}": m.name,
		"{{TIMESTAMP}}":      m.at.Format("2006-01-02 15:04:05"),
		"{{CHANGESET_ID}}":   naming.Slug(m.name),
	}
}

func (m migrationWriter) write(path, stubName string) error {
	content, err := stub.Process(stubName, m.tokens())
	if err != nil {
		return err
	}
	if err := generator.Generate(path, content); err != nil {
		return err
	}
	fmt.Fprintf(m.cmd.OutOrStdout(), "Created: %s\n", path)
	return nil
}

func (m migrationWriter) flyway() error {
	dir := filepath.Join(m.dir, filepath.FromSlash(detect.FlywayDir))
	first := !hasSQLFiles(dir)
	if err := m.write(filepath.Join(dir, generator.FlywayFileName(m.name, m.at)), "migration/flyway-sql"); err != nil {
		return err
	}
	if first && detect.FlywayOutOfOrderUnset(m.dir) {
		fmt.Fprintln(m.cmd.OutOrStdout())
		fmt.Fprintln(m.cmd.OutOrStdout(), "WARNING: spring.flyway.out-of-order=true is not set in application.properties.")
		fmt.Fprintln(m.cmd.OutOrStdout(), "If working with multiple branches, consider adding it to avoid migration ordering issues.")
	}
	return nil
}

func (m migrationWriter) liquibase(format string) error {
	fmtName := naming.Lower(strings.TrimSpace(format))
	if !contains(liquibaseFormats, fmtName) {
		return wrapError(fmt.Sprintf("make:migration: invalid format %q", format), nil,
			choiceHint(format, liquibaseFormats), 1)
	}
	changelogDir := filepath.Join(m.dir, filepath.FromSlash(detect.LiquibaseDir))
	fileName := generator.LiquibaseFileName(m.name, fmtName, m.at)
	if err := m.write(filepath.Join(changelogDir, "changes", fileName), "migration/liquibase-changeset-"+fmtName); err != nil {
		return err
	}

	masterName, masterStub, add := "db.changelog-master.xml", "migration/liquibase-master-xml", generator.AddXMLInclude
	if fmtName == "yaml" {
		masterName, masterStub, add = "db.changelog-master.yaml", "migration/liquibase-master-yaml", generator.AddYAMLInclude
	}
	master := filepath.Join(changelogDir, masterName)
	if !generator.Exists(master) {
		if err := m.write(master, masterStub); err != nil {
			return err
		}
	}
	if err := add(master, "changes/"+fileName); err != nil {
		return err
	}
	fmt.Fprintf(m.cmd.OutOrStdout(), "Updated: %s (added include for %s)\n", master, fileName)
	return nil
}

func hasSQLFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
