package printer_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/0xalexb/hjarta-cfg/printer"
	"github.com/0xalexb/hjarta-cfg/tree"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) *tree.Node {
	t.Helper()

	root, err := tree.FromMap(map[string]any{
		"name":    "app",
		"timeout": 30,
		"db": map[string]any{
			"host": "db1",
			"replica": map[string]any{
				"host": "db2",
			},
		},
	})
	require.NoError(t, err)

	return root
}

func TestPrintNode_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := printer.PrintNode(&buf, sampleTree(t), printer.DefaultOptions())
	require.NoError(t, err)

	expected := `db/
  host = "db1"
  replica/
    host = "db2"
name = "app"
timeout = 30
`
	assert.Equal(t, expected, buf.String())
}

func TestPrintNode_MaxDepth(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	opts := printer.DefaultOptions()
	opts.MaxDepth = 2
	opts.IndentSize = 4

	err := printer.PrintNode(&buf, sampleTree(t), opts)
	require.NoError(t, err)

	expected := `db/
    host = "db1"
    replica/ ...
name = "app"
timeout = 30
`
	assert.Equal(t, expected, buf.String())
}

func TestPrintView_TextMarksInherited(t *testing.T) {
	t.Parallel()

	view, err := tree.OpenView(sampleTree(t), "db/replica")
	require.NoError(t, err)

	var buf bytes.Buffer

	err = printer.PrintView(&buf, view, printer.DefaultOptions())
	require.NoError(t, err)

	expected := `name = "app" (inherited)
timeout = 30 (inherited)
host = "db2"
`
	assert.Equal(t, expected, buf.String())
}

func TestPrintView_Color(t *testing.T) {
	t.Parallel()

	view, err := tree.NewView(sampleTree(t), nil)
	require.NoError(t, err)

	var plain, colored bytes.Buffer

	opts := printer.DefaultOptions()
	require.NoError(t, printer.PrintView(&plain, view, opts))

	opts.Color = true
	require.NoError(t, printer.PrintView(&colored, view, opts))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
}

func TestPrintView_Structured(t *testing.T) {
	t.Parallel()

	view, err := tree.OpenView(sampleTree(t), "db")
	require.NoError(t, err)

	want := map[string]any{
		"name":    "app",
		"timeout": float64(30),
		"host":    "db1",
		"replica": map[string]any{"host": "db2"},
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		opts := printer.DefaultOptions()
		opts.Format = printer.FormatJSON

		require.NoError(t, printer.PrintView(&buf, view, opts))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, want, got)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		opts := printer.DefaultOptions()
		opts.Format = printer.FormatYAML

		require.NoError(t, printer.PrintView(&buf, view, opts))

		var got struct {
			Name    string            `yaml:"name"`
			Timeout int               `yaml:"timeout"`
			Host    string            `yaml:"host"`
			Replica map[string]string `yaml:"replica"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "app", got.Name)
		assert.Equal(t, 30, got.Timeout)
		assert.Equal(t, "db1", got.Host)
		assert.Equal(t, map[string]string{"host": "db2"}, got.Replica)
	})
}

func TestPrintValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		value  any
		format printer.Format
		want   string
	}{
		{name: "string", value: "db1", format: printer.FormatText, want: "\"db1\"\n"},
		{name: "number", value: 30, format: printer.FormatText, want: "30\n"},
		{name: "null", value: nil, format: printer.FormatText, want: "null\n"},
		{name: "node", value: mustNode(t, map[string]any{"a": 1}), format: printer.FormatText, want: "a = 1\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			opts := printer.DefaultOptions()
			opts.Format = testCase.format

			require.NoError(t, printer.PrintValue(&buf, testCase.value, opts))
			assert.Equal(t, testCase.want, buf.String())
		})
	}
}

func TestPrint_UnknownFormat(t *testing.T) {
	t.Parallel()

	opts := printer.DefaultOptions()
	opts.Format = "xml"

	var buf bytes.Buffer

	require.ErrorIs(t, printer.PrintNode(&buf, tree.New(), opts), printer.ErrUnknownFormat)
	require.ErrorIs(t, printer.PrintValue(&buf, 1, opts), printer.ErrUnknownFormat)
}

func mustNode(t *testing.T, mapping map[string]any) *tree.Node {
	t.Helper()

	node, err := tree.FromMap(mapping)
	require.NoError(t, err)

	return node
}
