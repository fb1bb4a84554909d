package generator

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMalformedChangelog is returned when an XML master changelog lacks its
// closing tag.
var ErrMalformedChangelog = errors.New("invalid master changelog: missing </databaseChangeLog> tag")

const changelogCloseTag = "</databaseChangeLog>"

// AddXMLInclude registers changeset in the XML master changelog. Already
// registered changesets are left alone.
func AddXMLInclude(master, changeset string) error {
	raw, err := os.ReadFile(master)
	if err != nil {
		return err
	}
	content := string(raw)
	if strings.Contains(content, changeset) {
		return nil
	}
	at := strings.LastIndex(content, changelogCloseTag)
	if at < 0 {
		return fmt.Errorf("%w: %s", ErrMalformedChangelog, master)
	}
	include := `    <include file="` + changeset + `"/>` + "\n"
	return os.WriteFile(master, []byte(content[:at]+include+content[at:]), 0o644)
}

// AddYAMLInclude appends an include entry for changeset to the YAML master
// changelog unless it is already listed.
func AddYAMLInclude(master, changeset string) error {
	raw, err := os.ReadFile(master)
	if err != nil {
		return err
	}
	content := string(raw)
	if strings.Contains(content, changeset) {
		return nil
	}
	content += "\n- include:\n    file: " + changeset + "\n"
	return os.WriteFile(master, []byte(content), 0o644)
}
