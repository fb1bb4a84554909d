// Package detect inspects a Spring Boot project on disk to find its build
// tool, migration tool and base package.
package detect

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrToolNotDetected is returned when no rule matches the project.
var ErrToolNotDetected = errors.New("tool not detected")

// BuildTool identifies the project build system.
type BuildTool string

const (
	Maven  BuildTool = "maven"
	Gradle BuildTool = "gradle"
)

// MigrationTool identifies the database migration library.
type MigrationTool string

const (
	Flyway    MigrationTool = "flyway"
	Liquibase MigrationTool = "liquibase"
)

const (
	resourcesDir       = "src/main/resources"
	FlywayDir          = resourcesDir + "/db/migration"
	LiquibaseDir       = resourcesDir + "/db/changelog"
	propertiesFile     = resourcesDir + "/application.properties"
	flywayOutOfOrderOn = "spring.flyway.out-of-order=true"
)

// DetectBuildTool prefers Gradle markers over Maven markers.
func DetectBuildTool(dir string) (BuildTool, error) {
	switch {
	case anyExists(dir, "gradlew", "build.gradle", "build.gradle.kts"):
		return Gradle, nil
	case anyExists(dir, "mvnw", "pom.xml"):
		return Maven, nil
	}
	return "", ErrToolNotDetected
}

// Executable returns the wrapper script when present, else the tool on PATH.
func Executable(dir string, tool BuildTool) string {
	if tool == Maven {
		if exists(filepath.Join(dir, "mvnw")) {
			return "./mvnw"
		}
		return "mvn"
	}
	if exists(filepath.Join(dir, "gradlew")) {
		return "./gradlew"
	}
	return "gradle"
}

type migrationRule func(dir string) (MigrationTool, bool)

// migrationRules run in priority order; an existing migration directory
// always wins over configuration or manifest hints.
var migrationRules = []migrationRule{
	dirRule(FlywayDir, Flyway),
	dirRule(LiquibaseDir, Liquibase),
	contentRule([]string{propertiesFile}, "spring.flyway.", "spring.liquibase."),
	contentRule([]string{resourcesDir + "/application.yml", resourcesDir + "/application.yaml"}, "flyway:", "liquibase:"),
	contentRule([]string{"pom.xml"}, "flyway-core", "liquibase-core"),
	contentRule([]string{"build.gradle", "build.gradle.kts"}, "flyway", "liquibase"),
}

// DetectMigrationTool applies the migration rules in order.
func DetectMigrationTool(dir string) (MigrationTool, error) {
	for _, rule := range migrationRules {
		if tool, ok := rule(dir); ok {
			return tool, nil
		}
	}
	return "", ErrToolNotDetected
}

// FlywayOutOfOrderUnset reports whether application.properties lacks
// spring.flyway.out-of-order=true. A missing file counts as unset.
func FlywayOutOfOrderUnset(dir string) bool {
	return !strings.Contains(readFile(filepath.Join(dir, propertiesFile)), flywayOutOfOrderOn)
}

func dirRule(rel string, tool MigrationTool) migrationRule {
	return func(dir string) (MigrationTool, bool) {
		return tool, isDir(filepath.Join(dir, filepath.FromSlash(rel)))
	}
}

func contentRule(files []string, flywayMarker, liquibaseMarker string) migrationRule {
	return func(dir string) (MigrationTool, bool) {
		for _, rel := range files {
			content := readFile(filepath.Join(dir, filepath.FromSlash(rel)))
			if strings.Contains(content, flywayMarker) {
				return Flyway, true
			}
			if strings.Contains(content, liquibaseMarker) {
				return Liquibase, true
			}
		}
		return "", false
	}
}

func anyExists(dir string, names ...string) bool {
	for _, name := range names {
		if exists(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// readFile returns "" when path cannot be read.
func readFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
