package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetectBuildTool(t *testing.T) {
	dir := t.TempDir()
	_, err := DetectBuildTool(dir)
	require.ErrorIs(t, err, ErrToolNotDetected)

	writeFile(t, filepath.Join(dir, "pom.xml"), "<project/>")
	tool, err := DetectBuildTool(dir)
	require.NoError(t, err)
	assert.Equal(t, Maven, tool)

	writeFile(t, filepath.Join(dir, "build.gradle.kts"), "plugins {}")
	tool, err = DetectBuildTool(dir)
	require.NoError(t, err)
	assert.Equal(t, Gradle, tool, "gradle markers win over maven")
}

func TestExecutablePrefersWrapper(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "mvn", Executable(dir, Maven))
	assert.Equal(t, "gradle", Executable(dir, Gradle))

	writeFile(t, filepath.Join(dir, "mvnw"), "#!/bin/sh")
	writeFile(t, filepath.Join(dir, "gradlew"), "#!/bin/sh")
	assert.Equal(t, "./mvnw", Executable(dir, Maven))
	assert.Equal(t, "./gradlew", Executable(dir, Gradle))
}

func TestDetectMigrationToolPriority(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		dirs  []string
		want  MigrationTool
	}{
		{
			name:  "flyway directory beats liquibase dependency",
			dirs:  []string{FlywayDir},
			files: map[string]string{"pom.xml": "<artifactId>liquibase-core</artifactId>"},
			want:  Flyway,
		},
		{
			name: "changelog directory",
			dirs: []string{LiquibaseDir},
			want: Liquibase,
		},
		{
			name:  "application properties",
			files: map[string]string{"src/main/resources/application.properties": "spring.liquibase.change-log=classpath:x"},
			want:  Liquibase,
		},
		{
			name:  "application yaml",
			files: map[string]string{"src/main/resources/application.yaml": "spring:\n  flyway:\n    enabled: true\n"},
			want:  Flyway,
		},
		{
			name:  "pom dependency",
			files: map[string]string{"pom.xml": "<artifactId>flyway-core</artifactId>"},
			want:  Flyway,
		},
		{
			name:  "gradle dependency",
			files: map[string]string{"build.gradle": "implementation 'org.liquibase:liquibase-core'"},
			want:  Liquibase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, d := range tt.dirs {
				require.NoError(t, os.MkdirAll(filepath.Join(dir, filepath.FromSlash(d)), 0o755))
			}
			for name, content := range tt.files {
				writeFile(t, filepath.Join(dir, filepath.FromSlash(name)), content)
			}
			got, err := DetectMigrationTool(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectMigrationToolNone(t *testing.T) {
	_, err := DetectMigrationTool(t.TempDir())
	assert.ErrorIs(t, err, ErrToolNotDetected)
}

func TestFlywayOutOfOrderUnset(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, FlywayOutOfOrderUnset(dir))

	props := filepath.Join(dir, "src", "main", "resources", "application.properties")
	writeFile(t, props, "spring.flyway.enabled=true\n")
	assert.True(t, FlywayOutOfOrderUnset(dir))

	writeFile(t, props, "spring.flyway.out-of-order=true\n")
	assert.False(t, FlywayOutOfOrderUnset(dir))
}

func TestBasePackageFromBootApplication(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), "<project><groupId>org.other</groupId></project>")
	writeFile(t, filepath.Join(dir, "src", "main", "java", "com", "acme", "shop", "ShopApplication.java"),
		"package com.acme.shop;\n\n@SpringBootApplication\npublic class ShopApplication {}\n")

	pkg, ok := BasePackage(dir)
	require.True(t, ok)
	assert.Equal(t, "com.acme.shop", pkg)
}

func TestBasePackageFromPomSkipsParent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), `<project>
  <parent>
    <groupId>org.springframework.boot</groupId>
  </parent>
  <groupId>com.acme</groupId>
</project>`)

	pkg, ok := BasePackage(dir)
	require.True(t, ok)
	assert.Equal(t, "com.acme", pkg)
}

func TestBasePackageFromSourceTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main", "java", "io"), 0o755))

	pkg, ok := BasePackage(dir)
	require.True(t, ok)
	assert.Equal(t, "io", pkg)
}

func TestBasePackageNotFound(t *testing.T) {
	_, ok := BasePackage(t.TempDir())
	assert.False(t, ok)
}
