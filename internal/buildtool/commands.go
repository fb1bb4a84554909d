// Package buildtool translates migration and test actions into Maven or
// Gradle invocations and runs them.
package buildtool

import (
	"fmt"
	"strconv"

	"github.com/deicod/springhex/internal/detect"
)

// Action is a migration lifecycle step.
type Action string

const (
	Migrate Action = "migrate"
	Clean   Action = "clean"
	Repair  Action = "repair"
)

// TestScope narrows run:test to a package convention.
type TestScope string

const (
	AllTests     TestScope = ""
	UnitTests    TestScope = "unit"
	FeatureTests TestScope = "feature"
)

type toolPair struct {
	build     detect.BuildTool
	migration detect.MigrationTool
}

var goals = map[toolPair]map[Action]string{
	{detect.Maven, detect.Flyway}: {
		Migrate: "flyway:migrate",
		Clean:   "flyway:clean",
		Repair:  "flyway:repair",
	},
	{detect.Gradle, detect.Flyway}: {
		Migrate: "flywayMigrate",
		Clean:   "flywayClean",
		Repair:  "flywayRepair",
	},
	{detect.Maven, detect.Liquibase}: {
		Migrate: "liquibase:update",
		Clean:   "liquibase:dropAll",
		Repair:  "liquibase:changelogSync",
	},
	{detect.Gradle, detect.Liquibase}: {
		Migrate: "update",
		Clean:   "dropAll",
		Repair:  "changelogSync",
	},
}

// MigrationCommand returns argv for migrate, clean or repair. Rollback takes
// a count and goes through RollbackCommand.
func MigrationCommand(executable string, build detect.BuildTool, migration detect.MigrationTool, action Action) ([]string, error) {
	goal, ok := goals[toolPair{build, migration}][action]
	if !ok {
		return nil, fmt.Errorf("%s has no %s goal for %s", build, action, migration)
	}
	return []string{executable, goal}, nil
}

// RollbackCommand returns the Liquibase rollback invocation for steps
// changesets.
func RollbackCommand(executable string, build detect.BuildTool, steps int) []string {
	count := strconv.Itoa(steps)
	if build == detect.Maven {
		return []string{executable, "liquibase:rollback", "-Dliquibase.rollbackCount=" + count}
	}
	return []string{executable, "rollbackCount", "-PliquibaseCommandValue=" + count}
}

// TestCommand returns the test invocation, filtered to scope when set.
func TestCommand(executable string, build detect.BuildTool, scope TestScope) []string {
	argv := []string{executable, "test"}
	if scope == AllTests {
		return argv
	}
	if build == detect.Maven {
		return append(argv, "-Dtest=**/"+string(scope)+"/**")
	}
	return append(argv, "--tests", "*."+string(scope)+".*")
}
