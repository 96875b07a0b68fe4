package main

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/Theoszt/DAA-DFS-dan-BFS/config"
	"github.com/Theoszt/DAA-DFS-dan-BFS/tsp"
)

// squareCSV has the optimum A-B-C-D-A at 4 km.
const squareCSV = `Kota/Kab,A,B,C,D
A,0,1,5,1
B,1,0,1,5
C,5,1,0,1
D,1,5,1,0
`

func testConfig(t *testing.T, output string) config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "distances.csv")
	require.NoError(t, os.WriteFile(path, []byte(squareCSV), 0o600))
	c := config.Default()
	c.Table = path
	c.MinLocations = 4
	c.Output = output
	require.NoError(t, c.Validate())

	return c
}

func TestSolve_Text(t *testing.T) {
	var out, trace bytes.Buffer
	require.NoError(t, solve(&out, &trace, testConfig(t, config.OutputText), nil, false))

	s := out.String()
	assert.Contains(t, s, "Algorithm:      dfs\n")
	assert.Contains(t, s, "Route:          A -> B -> C -> D -> A\n")
	assert.Contains(t, s, "Total distance: 4 km\n")
	assert.Contains(t, s, "Nodes visited:  16\n")
	assert.Contains(t, s, "Edges examined: 36\n")
	assert.NotContains(t, s, "No tour")
	assert.Empty(t, trace.String())
}

func TestSolve_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, solve(&out, nil, testConfig(t, config.OutputJSON), nil, false))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "dfs", got["algorithm"])
	assert.Equal(t, []any{"A", "B", "C", "D", "A"}, got["route"])
	assert.Equal(t, 4.0, got["cost"])
	assert.Equal(t, true, got["complete"])
	assert.Equal(t, 63.0, got["operations"])
	assert.NotEmpty(t, got["elapsed"])
}

func TestSolve_Trace(t *testing.T) {
	var out, trace bytes.Buffer
	require.NoError(t, solve(&out, &trace, testConfig(t, config.OutputText), nil, true))

	lines := strings.Split(strings.TrimSpace(trace.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "A -> B -> C -> D 4 km *", lines[0])
	assert.Equal(t, "A -> B -> D -> C 12 km", lines[1])
}

func TestSolve_BreadthFirstFromC(t *testing.T) {
	c := testConfig(t, config.OutputText)
	c.Algorithm = tsp.BFS
	c.Start = "C"

	var out bytes.Buffer
	require.NoError(t, solve(&out, nil, c, nil, false))
	assert.Contains(t, out.String(), "Route:          C -> A -> B -> D -> C\n")
	assert.Contains(t, out.String(), "Total distance: 12 km\n")
}

func TestSolve_Selection(t *testing.T) {
	c := testConfig(t, config.OutputJSON)
	c.MinLocations = 3

	var out bytes.Buffer
	require.NoError(t, solve(&out, nil, c, []string{"B", "C", "D"}, false))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []any{"B", "C", "D", "B"}, got["route"])
	assert.Equal(t, 7.0, got["cost"])
}

func TestSolve_Errors(t *testing.T) {
	var out bytes.Buffer

	err := solve(&out, nil, config.Default(), nil, false)
	assert.ErrorIs(t, err, errNoTable)

	c := testConfig(t, config.OutputText)
	c.MinLocations = config.Default().MinLocations
	assert.ErrorIs(t, solve(&out, nil, c, nil, false), tsp.ErrSelectionTooSmall)

	c = testConfig(t, config.OutputText)
	c.Start = "Z"
	assert.ErrorIs(t, solve(&out, nil, c, nil, false), tsp.ErrStartNotFound)

	c = testConfig(t, config.OutputText)
	c.Table = filepath.Join(t.TempDir(), "absent.csv")
	assert.ErrorIs(t, solve(&out, nil, c, nil, false), fs.ErrNotExist)

	assert.Empty(t, out.String())
}

func TestCompare(t *testing.T) {
	c := testConfig(t, config.OutputYAML)
	c.Start = "C"
	c.MetricsFile = filepath.Join(t.TempDir(), "tour.prom")

	var out bytes.Buffer
	require.NoError(t, compare(&out, c, nil))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "dfs", got[0]["algorithm"])
	assert.Equal(t, 4.0, got[0]["cost"])
	assert.Equal(t, "bfs", got[1]["algorithm"])
	assert.Equal(t, 12.0, got[1]["cost"])

	b, err := os.ReadFile(c.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `tour_search_runs_total{algorithm="dfs",outcome="complete"} 1`)
	assert.Contains(t, string(b), `tour_search_runs_total{algorithm="bfs",outcome="complete"} 1`)
	assert.Contains(t, string(b), `tour_search_nodes_visited{algorithm="bfs"} 4`)
}

func TestCompare_Text(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, compare(&out, testConfig(t, config.OutputText), nil))
	assert.Equal(t, 2, strings.Count(out.String(), "Algorithm:"))
}

func TestListLocations(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listLocations(&out, testConfig(t, config.OutputText)))
	assert.Equal(t, "A\nB\nC\nD\n", out.String())

	out.Reset()
	require.NoError(t, listLocations(&out, testConfig(t, config.OutputJSON)))
	assert.JSONEq(t, `["A","B","C","D"]`, out.String())

	assert.ErrorIs(t, listLocations(&out, config.Default()), errNoTable)
}

func TestNewPrinter_Invalid(t *testing.T) {
	_, err := newPrinter(&bytes.Buffer{}, "xml")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, version+"\n", out.String())
}
