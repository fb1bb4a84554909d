package detect

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	sourceDir       = "src/main/java"
	sourceScanDepth = 4
)

var (
	packageDecl   = regexp.MustCompile(`(?m)^package\s+([\w.]+);`)
	parentBlock   = regexp.MustCompile(`(?s)<parent>.*?</parent>`)
	groupIDElem   = regexp.MustCompile(`<groupId>([^<]+)</groupId>`)
	errStopWalk   = errors.New("stop walk")
	bootAnnotated = "@SpringBootApplication"
)

// BasePackage guesses the project's root package. It tries the package of
// the @SpringBootApplication class, then the pom.xml groupId outside
// <parent>, then the first directory below src/main/java.
func BasePackage(dir string) (string, bool) {
	for _, detect := range []func(string) (string, bool){
		fromBootApplication,
		fromPom,
		fromSourceTree,
	} {
		if pkg, ok := detect(dir); ok {
			return pkg, true
		}
	}
	return "", false
}

func fromBootApplication(dir string) (string, bool) {
	root := filepath.Join(dir, filepath.FromSlash(sourceDir))
	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, ".java") {
			return nil
		}
		content := readFile(path)
		if !strings.Contains(content, bootAnnotated) {
			return nil
		}
		if m := packageDecl.FindStringSubmatch(content); m != nil {
			found = m[1]
		}
		return errStopWalk
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		return "", false
	}
	return found, found != ""
}

func fromPom(dir string) (string, bool) {
	content := readFile(filepath.Join(dir, "pom.xml"))
	if content == "" {
		return "", false
	}
	m := groupIDElem.FindStringSubmatch(parentBlock.ReplaceAllString(content, ""))
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func fromSourceTree(dir string) (string, bool) {
	root := filepath.Join(dir, filepath.FromSlash(sourceDir))
	if _, err := os.Stat(root); err != nil {
		return "", false
	}
	var found string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() || path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if strings.Count(filepath.ToSlash(rel), "/") >= sourceScanDepth {
			return fs.SkipDir
		}
		found = strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
		return errStopWalk
	})
	return found, found != ""
}
