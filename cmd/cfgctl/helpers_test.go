package main

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `log_level: warn
timeout: 30
services:
  region: eu
  api:
    name: api
    port: 9000
  worker:
    timeout: 5
`

// writeConfig writes content to a YAML file in a temporary directory and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return path
}

// resetFlags restores every flag to its default.
func resetFlags(t *testing.T) {
	t.Helper()

	verbose = false
	quiet = false
	jsonOut = false
	noColor = false
	envPrefix = ""
	getBase = ""
	treeDepth = 0
}
