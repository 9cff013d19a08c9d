// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

func sampleResult() types.Result {
	d := testDict(nil, true)
	return types.Result{Items: d.mapMatches(melanomaTab, "MUC")}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResult(), &buf)
	out := buf.String()

	assert.Contains(t, out, "Accession")
	assert.Contains(t, out, "P43121")
	assert.Contains(t, out, "MUC18_HUMAN")
	assert.Contains(t, out, "MCAM MUC18")
	assert.Contains(t, out, "2 results")
}

func TestFormatTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(types.Result{}, &buf)
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(sampleResult(), &buf))

	var decoded struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Items, 2)

	first := decoded.Items[0]
	assert.Equal(t, "https://www.uniprot.org/uniprot/P43121", first["id"])
	assert.Equal(t, "https://www.uniprot.org", first["dictID"])
	assert.Equal(t, "MUC18_HUMAN", first["str"])
	assert.Equal(t, "S", first["type"])
	z := first["z"].(map[string]any)
	assert.Equal(t, []any{"MCAM", "MUC18"}, z["genes"])
}

func TestFormatJSON_EntryShape(t *testing.T) {
	d := testDict(nil, false)
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(types.Result{Items: d.mapEntries(idsTab)}, &buf))

	var decoded struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Items, 2)
	for _, item := range decoded.Items {
		assert.NotContains(t, item, "str")
		assert.NotContains(t, item, "type")
		assert.Contains(t, item, "terms")
		assert.Contains(t, item, "descr")
	}
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatYAML(sampleResult(), &buf))

	var decoded types.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleResult(), decoded)
}

func TestFormat_Dispatch(t *testing.T) {
	res := sampleResult()

	var j, y, tbl bytes.Buffer
	require.NoError(t, Format(res, types.OutputJSON, &j))
	require.NoError(t, Format(res, types.OutputYAML, &y))
	require.NoError(t, Format(res, "", &tbl))

	assert.True(t, strings.HasPrefix(j.String(), "{"))
	assert.True(t, strings.HasPrefix(y.String(), "items:"))
	assert.Contains(t, tbl.String(), "results")
}

func TestResultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "melanoma.yaml")
	opts := types.Options{Page: 1, PerPage: 20, Z: []string{"genes"}}
	res := sampleResult()

	require.NoError(t, WriteResultFile(path, "match", "melanoma", opts, res))

	rf, err := ReadResultFile(path)
	require.NoError(t, err)
	assert.Equal(t, "match", rf.Operation)
	assert.Equal(t, "melanoma", rf.Query)
	assert.Equal(t, opts, rf.Options)
	assert.Equal(t, 2, rf.Summary.Total)
	assert.False(t, rf.Summary.Timestamp.IsZero())
	assert.Equal(t, res, rf.Result())
}

func TestResultFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, WriteResultFile(path, "entries", "", types.Options{}, types.Result{Items: []types.Entry{}}))

	rf, err := ReadResultFile(path)
	require.NoError(t, err)
	assert.Equal(t, types.Result{Items: []types.Entry{}}, rf.Result())
}

func TestReadResultFile_Missing(t *testing.T) {
	_, err := ReadResultFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
