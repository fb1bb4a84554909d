package stub

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKnownStub(t *testing.T) {
	content, err := Load("domain/aggregate")
	require.NoError(t, err)
	assert.Contains(t, content, "{{AGGREGATE_CAPITALIZED}}")
	assert.Contains(t, content, "{{PACKAGE}}")
}

func TestLoadMissingStub(t *testing.T) {
	_, err := Load("domain/does-not-exist")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "domain/does-not-exist.stub")
}

func TestApplyReplacesEveryOccurrence(t *testing.T) {
	out := Apply("{{A}}-{{B}}-{{A}}", Tokens{"{{A}}": "x", "{{B}}": "y"})
	assert.Equal(t, "x-y-x", out)
}

func TestApplyLeavesUnknownPlaceholders(t *testing.T) {
	out := Apply("{{A}} {{UNKNOWN}}", Tokens{"{{A}}": "a"})
	assert.Equal(t, "a {{UNKNOWN}}", out)
}

func TestApplyIsOrderIndependentForDisjointTokens(t *testing.T) {
	template := "package {{PACKAGE}};\nclass {{NAME}} extends {{BASE}} { {{NAME}} x; }"
	tokens := Tokens{
		"{{PACKAGE}}": "com.acme.order",
		"{{NAME}}":    "Order",
		"{{BASE}}":    "AggregateRoot",
	}
	want := "package com.acme.order;\nclass Order extends AggregateRoot { Order x; }"

	// replay the substitution in every permutation of the keys
	keys := []string{"{{PACKAGE}}", "{{NAME}}", "{{BASE}}"}
	for _, perm := range permutations(keys) {
		out := template
		for _, k := range perm {
			out = replaceAll(out, k, tokens[k])
		}
		assert.Equal(t, want, out, "order %v", perm)
	}
	assert.Equal(t, want, Apply(template, tokens))
}

func TestProcess(t *testing.T) {
	out, err := Process("domain/aggregate", Tokens{
		"{{PACKAGE}}":               "com.acme.order.model",
		"{{BASE_PACKAGE}}":          "com.acme",
		"{{AGGREGATE}}":             "order",
		"{{AGGREGATE_CAPITALIZED}}": "Order",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "package com.acme.order.model;")
	assert.Contains(t, out, "class Order")
	assert.NotContains(t, out, "{{AGGREGATE_CAPITALIZED}}")
}

func TestNamesCoverEveryGeneratorStub(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	for _, want := range []string{
		"init/config",
		"domain/aggregate",
		"domain/command-handler",
		"infrastructure/domain-config",
		"infrastructure/bean-method-handler",
		"infrastructure/bean-method-model",
		"mediator/CommandBus",
		"migration/flyway-sql",
		"migration/liquibase-master-xml",
		"test/unit-test",
		"crud/service",
	} {
		assert.Contains(t, names, want)
	}
}

var placeholderPattern = regexp.MustCompile(`\{\{[A-Z_]+\}\}`)

func TestStubsUseWellFormedPlaceholders(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	for _, name := range names {
		content, err := Load(name)
		require.NoError(t, err)
		stripped := placeholderPattern.ReplaceAllString(content, "")
		assert.NotContains(t, stripped, "{{", "stub %s has a malformed placeholder", name)
	}
}

func TestTokensWithDoesNotMutate(t *testing.T) {
	base := Tokens{"{{A}}": "a"}
	next := base.With("{{B}}", "b")
	assert.Len(t, base, 1)
	assert.Len(t, next, 2)
}

func permutations(in []string) [][]string {
	if len(in) <= 1 {
		return [][]string{append([]string(nil), in...)}
	}
	var out [][]string
	for i := range in {
		rest := make([]string, 0, len(in)-1)
		rest = append(rest, in[:i]...)
		rest = append(rest, in[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]string{in[i]}, p...))
		}
	}
	return out
}

func replaceAll(s, old, new string) string {
	return Apply(s, Tokens{old: new})
}
