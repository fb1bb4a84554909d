package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deicod/springhex/internal/generator"
)

func TestMakeAggregateUsesDefaultLayout(t *testing.T) {
	tmp := t.TempDir()

	out, err := runCommand(t, newMakeAggregateCmd(), []string{"Order"}, map[string]string{"package": "com.acme", "output": tmp})
	if err != nil {
		t.Fatalf("make:aggregate: %v\noutput: %s", err, out)
	}

	path := javaPath(tmp, "com", "acme", "order", "model", "Order.java")
	assertFileContains(t, path, "package com.acme.order.model;")
	assertFileContains(t, path, "public class Order extends AggregateRoot")
	assertFileContains(t, path, "import com.acme.shared.domain.AggregateRoot;")
	if !strings.Contains(out, "Aggregate generated successfully!") {
		t.Fatalf("missing success message:\n%s", out)
	}
}

func TestMakeAggregateRefusesToOverwrite(t *testing.T) {
	tmp := t.TempDir()
	path := javaPath(tmp, "com", "acme", "order", "model", "Order.java")
	writeFile(t, path, "// hand written\n")

	_, err := runCommand(t, newMakeAggregateCmd(), []string{"Order"}, map[string]string{"package": "com.acme", "output": tmp})
	if !errors.Is(err, generator.ErrFileExists) {
		t.Fatalf("expected ErrFileExists, got %v", err)
	}
	var cerr CommandError
	if !errors.As(err, &cerr) || cerr.Suggestion == "" {
		t.Fatalf("expected CommandError with a hint, got %#v", err)
	}
	if got := readFile(t, path); got != "// hand written\n" {
		t.Fatalf("existing file was modified: %q", got)
	}
}

func TestMakeAggregateUsesConfigBasePackage(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, ".hex", "config.yml"), "base-package: org.shop\npaths:\n  model: \"domain.{aggregate}\"\n")

	out, err := runCommand(t, newMakeAggregateCmd(), []string{"Cart"}, map[string]string{"output": tmp})
	if err != nil {
		t.Fatalf("make:aggregate: %v\noutput: %s", err, out)
	}
	assertFileContains(t, javaPath(tmp, "org", "shop", "domain", "cart", "Cart.java"), "package org.shop.domain.cart;")
	if !strings.Contains(out, "Using base package from") {
		t.Fatalf("expected config source message, got:\n%s", out)
	}
}

func TestMakeAggregateWithoutBasePackageFails(t *testing.T) {
	tmp := t.TempDir()

	_, err := runCommand(t, newMakeAggregateCmd(), []string{"Order"}, map[string]string{"output": tmp})
	if err == nil {
		t.Fatalf("expected error without base package")
	}
	var cerr CommandError
	if !errors.As(err, &cerr) || !strings.Contains(cerr.Suggestion, "-p") {
		t.Fatalf("expected hint mentioning -p, got %#v", err)
	}
}

func TestMakeModelRegistersBeanOnce(t *testing.T) {
	tmp := t.TempDir()
	flags := map[string]string{"package": "com.acme", "output": tmp}
	if _, err := runCommand(t, newMakeMediatorCmd(), nil, flags); err != nil {
		t.Fatalf("make:mediator: %v", err)
	}

	modelFlags := map[string]string{"package": "com.acme", "output": tmp, "aggregate": "order"}
	if _, err := runCommand(t, newMakeModelCmd(), []string{"LineItem"}, modelFlags); err != nil {
		t.Fatalf("make:model: %v", err)
	}

	config := javaPath(tmp, "com", "acme", "infrastructure", "config", "DomainConfig.java")
	content := readFile(t, config)
	if !containsAll(content, "import com.acme.order.model.LineItem;", "public LineItem lineItem()", "import org.springframework.context.annotation.Bean;") {
		t.Fatalf("unexpected DomainConfig.java:\n%s", content)
	}

	// A second model with the same bean name must not duplicate it.
	if err := removeFile(javaPath(tmp, "com", "acme", "order", "model", "LineItem.java")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := runCommand(t, newMakeModelCmd(), []string{"LineItem"}, modelFlags); err != nil {
		t.Fatalf("make:model again: %v", err)
	}
	if n := strings.Count(readFile(t, config), "lineItem()"); n != 1 {
		t.Fatalf("expected one lineItem bean, found %d", n)
	}
}

func TestMakeModelSkipsMissingDomainConfig(t *testing.T) {
	tmp := t.TempDir()
	flags := map[string]string{"package": "com.acme", "output": tmp, "aggregate": "order"}

	if _, err := runCommand(t, newMakeModelCmd(), []string{"LineItem"}, flags); err != nil {
		t.Fatalf("make:model: %v", err)
	}
	assertFileContains(t, javaPath(tmp, "com", "acme", "order", "model", "LineItem.java"), "public class LineItem")
	assertNoFile(t, javaPath(tmp, "com", "acme", "infrastructure", "config", "DomainConfig.java"))
}

func TestMakeValueObjectPicksIdentifierStub(t *testing.T) {
	tmp := t.TempDir()
	flags := map[string]string{"package": "com.acme", "output": tmp, "aggregate": "order"}

	if _, err := runCommand(t, newMakeValueObjectCmd(), []string{"OrderId"}, flags); err != nil {
		t.Fatalf("make:value-object: %v", err)
	}
	assertFileContains(t, javaPath(tmp, "com", "acme", "order", "model", "OrderId.java"), "UUID")
}

func TestMakeEntityWritesDomainAndJpaEntity(t *testing.T) {
	tmp := t.TempDir()
	flags := map[string]string{"package": "com.acme", "output": tmp, "aggregate": "order"}

	if _, err := runCommand(t, newMakeEntityCmd(), []string{"Order"}, flags); err != nil {
		t.Fatalf("make:entity: %v", err)
	}
	assertFileContains(t, javaPath(tmp, "com", "acme", "order", "model", "Order.java"), "package com.acme.order.model;")
	assertFileContains(t, javaPath(tmp, "com", "acme", "order", "infrastructure", "persistence", "OrderJpaEntity.java"), "orders")
}

func removeFile(path string) error {
	return os.Remove(path)
}
