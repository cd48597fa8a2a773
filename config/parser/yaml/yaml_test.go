package yaml

import (
	"testing"

	"github.com/0xalexb/hjarta-cfg/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_NestedMapping(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
name: test-app
api:
  host: localhost
  permissions:
    admin:
      read: true
`)

	mapping, err := parser.Parse(data)

	require.NoError(t, err)
	assert.Equal(t, "test-app", mapping["name"])

	api, ok := mapping["api"].(map[string]any)
	require.True(t, ok, "nested sections decode as mappings")
	assert.Equal(t, "localhost", api["host"])
	assert.Contains(t, api, "permissions")
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	_, err := parser.Parse([]byte{})

	require.ErrorIs(t, err, ErrEmptyData)
}

func TestParser_Parse_NullDocument(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	mapping, err := parser.Parse([]byte("null\n"))

	require.NoError(t, err)
	assert.Empty(t, mapping)
	assert.NotNil(t, mapping)
}

func TestParser_Parse_NotMapping(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		data string
	}{
		{name: "scalar", data: `"just a string"`},
		{name: "sequence", data: "- a\n- b\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewParser().Parse([]byte(testCase.data))

			require.ErrorIs(t, err, ErrNotMapping)
		})
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	_, err := parser.Parse([]byte("key: [unclosed"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal error")
}

func TestParser_Decode(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	var result struct {
		Host    string            `yaml:"host"`
		Port    int               `yaml:"port"`
		Enabled bool              `yaml:"enabled"`
		Labels  map[string]string `yaml:"labels"`
	}

	err := parser.Decode(map[string]any{
		"host":    "db.example.com",
		"port":    uint64(5432),
		"enabled": true,
		"labels":  map[string]any{"team": "infra"},
		"extra":   "ignored",
	}, &result)

	require.NoError(t, err)
	assert.Equal(t, "db.example.com", result.Host)
	assert.Equal(t, 5432, result.Port)
	assert.True(t, result.Enabled)
	assert.Equal(t, map[string]string{"team": "infra"}, result.Labels)
}

func TestParser_Decode_Strict(t *testing.T) {
	t.Parallel()

	parser := NewParser(WithStrict())

	var result struct {
		Host string `yaml:"host"`
	}

	err := parser.Decode(map[string]any{"host": "h", "extra": "x"}, &result)

	require.Error(t, err)
}

func TestParser_Decode_TypeMismatch(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	var result struct {
		Port int `yaml:"port"`
	}

	err := parser.Decode(map[string]any{"port": "not a number"}, &result)

	require.Error(t, err)
}

func TestParser_DecodeView_Strict(t *testing.T) {
	t.Parallel()

	type dbConfig struct {
		Host     string `yaml:"host"`
		LogLevel string `yaml:"log_level"`
	}

	tests := []struct {
		name    string
		data    map[string]any
		want    dbConfig
		wantErr bool
	}{
		{
			name: "inherited keys without a field are ignored",
			data: map[string]any{
				"timeout": 30,
				"db":      map[string]any{"host": "h"},
			},
			want: dbConfig{Host: "h", LogLevel: ""},
		},
		{
			name: "inherited keys with a field are decoded",
			data: map[string]any{
				"log_level": "debug",
				"db":        map[string]any{"host": "h"},
			},
			want: dbConfig{Host: "h", LogLevel: "debug"},
		},
		{
			name: "own unknown keys are rejected",
			data: map[string]any{
				"log_level": "debug",
				"db":        map[string]any{"host": "h", "extra": "x"},
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			root, err := tree.FromMap(testCase.data)
			require.NoError(t, err)

			view, err := tree.OpenView(root, "db")
			require.NoError(t, err)

			var result dbConfig

			err = NewParser(WithStrict()).DecodeView(view, &result)
			if testCase.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, result)
		})
	}
}

func TestParser_DecodeView_StrictRequiresPointer(t *testing.T) {
	t.Parallel()

	root, err := tree.FromMap(map[string]any{"host": "h"})
	require.NoError(t, err)

	view, err := tree.OpenView(root, "")
	require.NoError(t, err)

	var result struct {
		Host string `yaml:"host"`
	}

	require.Error(t, NewParser(WithStrict()).DecodeView(view, result))
}
