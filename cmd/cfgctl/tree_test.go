package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeCommand(t *testing.T) {
	path := writeConfig(t, testConfig)

	tests := []struct {
		name  string
		args  []string
		depth int
		want  string
	}{
		{
			name: "whole file",
			args: []string{path},
			want: `log_level = "warn"
services/
  api/
    name = "api"
    port = 9000
  region = "eu"
  worker/
    timeout = 5
timeout = 30
`,
		},
		{
			name: "section with inherited values",
			args: []string{path, "services/api"},
			want: `log_level = "warn" (inherited)
region = "eu" (inherited)
timeout = 30 (inherited)
name = "api"
port = 9000
`,
		},
		{
			name:  "limited depth",
			args:  []string{path},
			depth: 1,
			want: `log_level = "warn"
services/ ...
timeout = 30
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			treeDepth = tt.depth

			var buf bytes.Buffer

			err := runTree(&buf, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTreeCommand_MissingSection(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer

	err := runTree(&buf, []string{writeConfig(t, testConfig), "services/api/port"})
	require.Error(t, err)
}
