package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ddddddO/gtree"

	"github.com/deicod/springhex/internal/layout"
)

// printFileTree renders generated files grouped by source root and package.
func printFileTree(w io.Writer, dir string, files []string) error {
	if len(files) == 0 {
		return nil
	}
	root := gtree.NewRoot(filepath.Clean(dir))
	nodes := map[string]*gtree.Node{}
	child := func(parent *gtree.Node, key, text string) *gtree.Node {
		if n, ok := nodes[key]; ok {
			return n
		}
		n := parent.Add(text)
		nodes[key] = n
		return n
	}
	for _, file := range files {
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			rel = file
		}
		rel = filepath.ToSlash(rel)
		srcRoot, pkgPath := splitSourceRoot(rel)
		parent := root
		if srcRoot != "" {
			parent = child(root, srcRoot, srcRoot)
		}
		if pkgPath != "" {
			parent = child(parent, srcRoot+"|"+pkgPath, layout.PathToPackage(pkgPath))
		}
		parent.Add(filepath.Base(file))
	}
	return gtree.OutputProgrammably(w, root)
}

// splitSourceRoot separates "src/main/java/com/acme/Order.java" into the
// source root and the package directory.
func splitSourceRoot(rel string) (string, string) {
	dir := filepath.ToSlash(filepath.Dir(rel))
	for _, srcRoot := range []string{layout.SourceDir, layout.TestSourceDir} {
		if dir == srcRoot {
			return srcRoot, ""
		}
		if strings.HasPrefix(dir, srcRoot+"/") {
			return srcRoot, strings.TrimPrefix(dir, srcRoot+"/")
		}
	}
	if dir == "." {
		return "", ""
	}
	return dir, ""
}
