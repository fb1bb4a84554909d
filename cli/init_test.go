package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deicod/springhex/internal/generator"
)

func TestInitWritesConfig(t *testing.T) {
	tmp := t.TempDir()

	out, err := runCommand(t, newInitCmd(), nil, map[string]string{"package": "com.acme", "output": tmp})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	path := filepath.Join(tmp, ".hex", "config.yml")
	assertFileContains(t, path, "base-package: com.acme")
	if !containsAll(out, "Created: "+path, "Next steps:", "spring-hex make:aggregate Order") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestInitDetectsBasePackage(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, javaPath(tmp, "org", "shop", "ShopApplication.java"),
		"package org.shop;\n\n@SpringBootApplication\npublic class ShopApplication {}\n")

	out, err := runCommand(t, newInitCmd(), nil, map[string]string{"output": tmp})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	assertFileContains(t, filepath.Join(tmp, ".hex", "config.yml"), "base-package: org.shop")
	if !strings.Contains(out, "Auto-detected base package: org.shop") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestInitRefusesOverwriteWithoutForce(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".hex", "config.yml")
	writeFile(t, path, "base-package: old.pkg\n")

	_, err := runCommand(t, newInitCmd(), nil, map[string]string{"package": "com.acme", "output": tmp})
	if !errors.Is(err, generator.ErrFileExists) {
		t.Fatalf("expected ErrFileExists, got %v", err)
	}
	assertFileContains(t, path, "old.pkg")

	if _, err := runCommand(t, newInitCmd(), nil, map[string]string{"package": "com.acme", "output": tmp, "force": "true"}); err != nil {
		t.Fatalf("init --force: %v", err)
	}
	assertFileContains(t, path, "base-package: com.acme")
}

func TestInitWithoutDetectableBasePackage(t *testing.T) {
	tmp := t.TempDir()

	if _, err := runCommand(t, newInitCmd(), nil, map[string]string{"output": tmp}); err == nil {
		t.Fatalf("expected error when base package cannot be detected")
	}
}
