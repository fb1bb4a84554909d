// Package doctor inspects a Spring Boot project for spring-hex setup issues.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/deicod/springhex/internal/config"
	"github.com/deicod/springhex/internal/detect"
	"github.com/deicod/springhex/internal/generator"
	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/stub"
)

// Result captures the outcome of a single diagnostic check.
type Result struct {
	Name    string
	Status  Status
	Details string
}

type Status string

const (
	StatusOK    Status = "ok"
	StatusWarn  Status = "warn"
	StatusError Status = "error"
)

var lookPath = exec.LookPath

var checks = []func(context.Context, string) Result{
	checkJava,
	checkConfig,
	checkBasePackage,
	checkBuildTool,
	checkMigrationTool,
	checkSources,
	checkDomainConfig,
	checkStubs,
}

// Run executes every check against the project rooted at dir.
func Run(ctx context.Context, dir string) []Result {
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		results = append(results, check(ctx, dir))
	}
	return results
}

func HasFailures(results []Result) bool {
	for _, res := range results {
		if res.Status == StatusError {
			return true
		}
	}
	return false
}

func checkJava(context.Context, string) Result {
	path, err := lookPath("java")
	if err != nil {
		return Result{Name: "Java runtime", Status: StatusWarn, Details: "java not found in PATH; build tool commands will fail"}
	}
	return Result{Name: "Java runtime", Status: StatusOK, Details: path}
}

func checkConfig(_ context.Context, dir string) Result {
	name := filepath.Join(config.Dir, config.File)
	info, err := os.Stat(config.Path(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Name: name, Status: StatusWarn, Details: "config missing; run 'spring-hex init'"}
		}
		return Result{Name: name, Status: StatusError, Details: err.Error()}
	}
	if info.IsDir() {
		return Result{Name: name, Status: StatusError, Details: "expected file but found directory"}
	}
	cfg := config.Load(dir)
	if !cfg.Present {
		return Result{Name: name, Status: StatusError, Details: strings.Join(cfg.Warnings, "; ")}
	}
	if len(cfg.Warnings) > 0 {
		return Result{Name: name, Status: StatusWarn, Details: strings.Join(cfg.Warnings, "; ")}
	}
	return Result{Name: name, Status: StatusOK}
}

func checkBasePackage(_ context.Context, dir string) Result {
	cfg, err := config.Resolve(dir, "")
	if err != nil {
		return Result{Name: "base package", Status: StatusError, Details: "not configured or detectable; run 'spring-hex init -p <package>'"}
	}
	return Result{Name: "base package", Status: StatusOK, Details: fmt.Sprintf("%s (%s)", cfg.BasePackage, cfg.Source)}
}

func checkBuildTool(_ context.Context, dir string) Result {
	build, err := detect.DetectBuildTool(dir)
	if err != nil {
		return Result{Name: "build tool", Status: StatusError, Details: "no pom.xml, build.gradle or wrapper found"}
	}
	return Result{Name: "build tool", Status: StatusOK, Details: fmt.Sprintf("%s (%s)", build, detect.Executable(dir, build))}
}

func checkMigrationTool(_ context.Context, dir string) Result {
	tool, err := detect.DetectMigrationTool(dir)
	if err != nil {
		return Result{Name: "migration tool", Status: StatusWarn, Details: "neither Flyway nor Liquibase detected; migrate commands are unavailable"}
	}
	return Result{Name: "migration tool", Status: StatusOK, Details: string(tool)}
}

func checkSources(_ context.Context, dir string) Result {
	root := filepath.Join(dir, filepath.FromSlash(layout.SourceDir))
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Name: "Java sources", Status: StatusWarn, Details: "missing src/main/java"}
		}
		return Result{Name: "Java sources", Status: StatusError, Details: err.Error()}
	}
	if !info.IsDir() {
		return Result{Name: "Java sources", Status: StatusError, Details: "src/main/java is not a directory"}
	}
	count := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".java") {
			count++
		}
		return nil
	})
	if err != nil {
		return Result{Name: "Java sources", Status: StatusError, Details: err.Error()}
	}
	return Result{Name: "Java sources", Status: StatusOK, Details: fmt.Sprintf("%d java files", count)}
}

func checkDomainConfig(_ context.Context, dir string) Result {
	cfg, err := config.Resolve(dir, "")
	if err != nil {
		return Result{Name: "DomainConfig.java", Status: StatusWarn, Details: "skipped; base package unknown"}
	}
	reg := generator.NewRegistry(dir, cfg.Paths.ResolveStatic(layout.Config))
	if !reg.Exists() {
		return Result{Name: "DomainConfig.java", Status: StatusWarn, Details: "not generated yet; created by make:command, make:query or make:aggregate"}
	}
	return Result{Name: "DomainConfig.java", Status: StatusOK, Details: reg.Path()}
}

func checkStubs(context.Context, string) Result {
	names, err := stub.Names()
	if err != nil {
		return Result{Name: "stub templates", Status: StatusError, Details: err.Error()}
	}
	if len(names) == 0 {
		return Result{Name: "stub templates", Status: StatusError, Details: "no embedded templates; reinstall spring-hex"}
	}
	return Result{Name: "stub templates", Status: StatusOK, Details: fmt.Sprintf("%d embedded", len(names))}
}
