package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deicod/springhex/internal/stub"
)

func TestAddXMLInclude(t *testing.T) {
	master := filepath.Join(t.TempDir(), "db.changelog-master.xml")
	content, err := stub.Load("migration/liquibase-master-xml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(master, []byte(content), 0o644))

	require.NoError(t, AddXMLInclude(master, "changes/20250101000000000_create_orders.xml"))
	require.NoError(t, AddXMLInclude(master, "changes/20250101000000000_create_orders.xml"))

	data, err := os.ReadFile(master)
	require.NoError(t, err)
	text := string(data)
	assert.Equal(t, 1, strings.Count(text, `<include file="changes/20250101000000000_create_orders.xml"/>`))
	assert.True(t, strings.Index(text, "<include") < strings.Index(text, "</databaseChangeLog>"))
}

func TestAddXMLIncludeMalformed(t *testing.T) {
	master := filepath.Join(t.TempDir(), "db.changelog-master.xml")
	require.NoError(t, os.WriteFile(master, []byte("<databaseChangeLog>"), 0o644))
	assert.ErrorIs(t, AddXMLInclude(master, "changes/x.xml"), ErrMalformedChangelog)
}

func TestAddYAMLInclude(t *testing.T) {
	master := filepath.Join(t.TempDir(), "db.changelog-master.yaml")
	require.NoError(t, os.WriteFile(master, []byte("databaseChangeLog:\n"), 0o644))

	require.NoError(t, AddYAMLInclude(master, "changes/1_a.yaml"))
	require.NoError(t, AddYAMLInclude(master, "changes/1_a.yaml"))

	data, err := os.ReadFile(master)
	require.NoError(t, err)
	assert.Equal(t, "databaseChangeLog:\n\n- include:\n    file: changes/1_a.yaml\n", string(data))
}
