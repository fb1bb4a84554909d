package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/buildtool"
	"github.com/deicod/springhex/internal/detect"
	"github.com/deicod/springhex/internal/generator"
	"github.com/deicod/springhex/internal/stub"
)

var runBuildTool = buildtool.Run

// project is a detected build/migration tool pair.
type project struct {
	dir        string
	build      detect.BuildTool
	migration  detect.MigrationTool
	executable string
}

func detectProject(command, dir string, needBuild bool) (project, error) {
	p := project{dir: dir}
	migration, err := detect.DetectMigrationTool(dir)
	if err != nil {
		return p, wrapError(command+": no migration tool detected", err,
			"Ensure Flyway or Liquibase is configured (db/migration, db/changelog or a build file dependency).", 1)
	}
	p.migration = migration
	if !needBuild {
		return p, nil
	}
	build, err := detect.DetectBuildTool(dir)
	if err != nil {
		return p, wrapError(command+": no build tool detected", err,
			"Run from a Maven or Gradle project directory, or pass -o.", 1)
	}
	p.build = build
	p.executable = detect.Executable(dir, build)
	return p, nil
}

func (p project) String() string {
	return fmt.Sprintf("%s + %s", strings.ToUpper(string(p.build)), strings.ToUpper(string(p.migration)))
}

func runArgv(ctx context.Context, cmd *cobra.Command, command, dir string, argv []string) error {
	streams := buildtool.Streams{Stdin: os.Stdin, Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
	logVerbose(cmd, "exec %s in %s", strings.Join(argv, " "), dir)
	if err := runBuildTool(ctx, dir, argv, streams); err != nil {
		return fail(command, err)
	}
	return nil
}

func newMigrateCmd() *cobra.Command {
	return newMigrationActionCmd("migrate", "Run pending database migrations", buildtool.Migrate)
}

func newMigrateRepairCmd() *cobra.Command {
	return newMigrationActionCmd("migrate:repair", "Repair the migration history table", buildtool.Repair)
}

func newMigrationActionCmd(use, short string, action buildtool.Action) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := detectProject(use, output, true)
			if err != nil {
				return err
			}
			argv, err := buildtool.MigrationCommand(p.executable, p.build, p.migration, action)
			if err != nil {
				return fail(use, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Detected: %s\n", p)
			fmt.Fprintf(cmd.OutOrStdout(), "Running: %s\n", strings.Join(argv, " "))
			return runArgv(commandContext(cmd), cmd, use, p.dir, argv)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Project root")
	return cmd
}

func newMigrateFreshCmd() *cobra.Command {
	var (
		output string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "migrate:fresh",
		Short: "Drop all tables and re-run all migrations (destructive)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return wrapError("migrate:fresh: refusing to drop the database without --force", nil,
					"Re-run with --force to confirm the destructive operation.", 1)
			}
			p, err := detectProject("migrate:fresh", output, true)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Detected: %s\n", p)
			steps := []struct {
				label  string
				action buildtool.Action
			}{
				{"Step 1 - Cleaning", buildtool.Clean},
				{"Step 2 - Migrating", buildtool.Migrate},
			}
			for _, step := range steps {
				argv, err := buildtool.MigrationCommand(p.executable, p.build, p.migration, step.action)
				if err != nil {
					return fail("migrate:fresh", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", step.label, strings.Join(argv, " "))
				if err := runArgv(commandContext(cmd), cmd, "migrate:fresh", p.dir, argv); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Fresh migration completed successfully!")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Project root")
	cmd.Flags().BoolVar(&force, "force", false, "Confirm the destructive operation")
	return cmd
}

const flywayRevertGuidance = `
	Flyway Community Edition doesn't support undo migrations.
	A revert migration has been created. Edit it with the appropriate rollback SQL,
	then run: spring-hex migrate
`

func newMigrateRollbackCmd() *cobra.Command {
	var (
		output string
		step   int
	)
	cmd := &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back database migrations",
		Long: "migrate:rollback runs a Liquibase rollback of --step changesets. " +
			"Flyway projects get a revert migration for the latest versioned script instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := detectProject("migrate:rollback", output, false)
			if err != nil {
				return err
			}
			if p.migration == detect.Flyway {
				return flywayRevert(cmd, output)
			}
			if step < 1 {
				return wrapError("migrate:rollback: --step must be at least 1", nil, "Pass a positive --step.", 1)
			}
			p, err = detectProject("migrate:rollback", output, true)
			if err != nil {
				return err
			}
			argv := buildtool.RollbackCommand(p.executable, p.build, step)
			fmt.Fprintf(cmd.OutOrStdout(), "Detected: %s\n", p)
			fmt.Fprintf(cmd.OutOrStdout(), "Running: %s\n", strings.Join(argv, " "))
			return runArgv(commandContext(cmd), cmd, "migrate:rollback", p.dir, argv)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Project root")
	cmd.Flags().IntVar(&step, "step", 1, "Number of changesets to roll back (Liquibase only)")
	return cmd
}

func flywayRevert(cmd *cobra.Command, dir string) error {
	migrationDir := filepath.Join(dir, filepath.FromSlash(detect.FlywayDir))
	last, err := lastFlywayMigration(migrationDir)
	if err != nil {
		return wrapError("migrate:rollback: "+err.Error(), err, "Create a migration with 'spring-hex make:migration' first.", 1)
	}
	original := migrationName(last)
	at := now()
	content, err := stub.Process("migration/flyway-revert-sql", stub.Tokens{
		"{{ORIGINAL_MIGRATION}}": original,
		"{{ORIGINAL_FILE}}":      last,
		"{{TIMESTAMP}}":          at.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return fail("migrate:rollback", err)
	}
	path := filepath.Join(migrationDir, generator.FlywayRevertFileName(original, at))
	if err := generator.Generate(path, content); err != nil {
		return fail("migrate:rollback", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", path)
	fmt.Fprint(cmd.OutOrStdout(), dedent.Dedent(flywayRevertGuidance))
	return nil
}

// lastFlywayMigration returns the lexically greatest V*.sql file name.
func lastFlywayMigration(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("no migration directory found at %s", dir)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, "V") && strings.HasSuffix(name, ".sql") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no Flyway migration files found in %s", dir)
	}
	sort.Strings(names)
	return names[len(names)-1], nil
}

// migrationName extracts create_users from V20260207143025123__create_users.sql.
func migrationName(file string) string {
	i := strings.Index(file, "__")
	if i < 0 {
		return file
	}
	return strings.TrimSuffix(file[i+2:], ".sql")
}
