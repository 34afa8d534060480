package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/kma-mcp/internal/adapter/kma"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"tm=202501011200", "stn=108", "opt=a=b"})
	require.NoError(t, err)
	assert.Equal(t, kma.Params{"tm": "202501011200", "stn": "108", "opt": "a=b"}, params)

	_, err = parseParams([]string{"stn"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"stn"`)

	_, err = parseParams([]string{"=108"})
	require.Error(t, err)
}

func TestEndpointsCmd_Table(t *testing.T) {
	out, err := execute(t, "endpoints", "asos.")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "asos."), line)
	}
	assert.Contains(t, out, "asos.hourly")
	assert.Contains(t, out, "tm*")
}

func TestEndpointsCmd_JSON(t *testing.T) {
	out, err := execute(t, "endpoints", "--json", "uv.")
	require.NoError(t, err)

	var eps []struct {
		Name        string `json:"name"`
		Base        string `json:"base"`
		Unsupported string `json:"unsupported"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &eps))
	require.NotEmpty(t, eps)

	var legacy int
	for _, ep := range eps {
		assert.True(t, strings.HasPrefix(ep.Name, "uv."))
		if ep.Unsupported != "" {
			legacy++
		}
	}
	assert.Positive(t, legacy)
}

func TestSchemaCmd_ListsRecords(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)

	names := strings.Fields(out)
	assert.Equal(t, recordNames(), names)
	assert.Contains(t, names, "ASOSObservation")
}

func TestSchemaCmd_Record(t *testing.T) {
	out, err := execute(t, "schema", "ASOSObservation")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	ta, ok := props["ta"].(map[string]any)
	require.True(t, ok, "ASOSObservation has a ta property")
	assert.Len(t, ta["oneOf"], 3)
}

func TestSchemaCmd_UnknownRecord(t *testing.T) {
	_, err := execute(t, "schema", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown record")
}

func TestCallCmd_RequiresEndpoint(t *testing.T) {
	_, err := execute(t, "call")
	require.Error(t, err)
}
