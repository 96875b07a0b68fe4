package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theoszt/DAA-DFS-dan-BFS/config"
	"github.com/Theoszt/DAA-DFS-dan-BFS/tsp"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tourctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Equal(t, tsp.DFS, c.Algorithm)
	assert.Equal(t, 10, c.MinLocations)
	assert.Equal(t, 12, c.MaxLocations)
	assert.Equal(t, config.OutputYAML, c.Output)
	assert.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
table: distances.csv
start: Bandung
locations: [Bandung, Bekasi, Bogor]
algorithm: breadth-first
minLocations: 3
output: json
metricsFile: /tmp/tour.prom
`)
	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "distances.csv"), c.Table)
	assert.Equal(t, "Bandung", c.Start)
	assert.Equal(t, []string{"Bandung", "Bekasi", "Bogor"}, c.Locations)
	assert.Equal(t, tsp.BFS, c.Algorithm)
	assert.Equal(t, 3, c.MinLocations)
	assert.Equal(t, config.DefaultMaxLocations, c.MaxLocations, "unset fields keep defaults")
	assert.Equal(t, config.OutputJSON, c.Output)
	assert.Equal(t, "/tmp/tour.prom", c.MetricsFile)
}

func TestLoad_AbsoluteTable(t *testing.T) {
	c, err := config.Load(writeFile(t, "table: /data/distances.csv\n"))
	require.NoError(t, err)
	assert.Equal(t, "/data/distances.csv", c.Table)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	for name, body := range map[string]string{
		"unknown field":     "colour: red\n",
		"unknown algorithm": "algorithm: dijkstra\n",
		"bad output":        "output: xml\n",
		"negative min":      "minLocations: -1\n",
		"min over max":      "minLocations: 9\nmaxLocations: 4\n",
		"not yaml":          "table: [\n",
	} {
		_, err := config.Load(writeFile(t, body))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestValidate(t *testing.T) {
	c := config.Default()
	c.MaxLocations = 0
	c.MinLocations = 40
	assert.NoError(t, c.Validate(), "0 disables the upper limit")

	c = config.Default()
	c.MaxLocations = -1
	assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)

	c = config.Default()
	c.Algorithm = tsp.Algorithm(5)
	assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
}

func TestSearchOptions(t *testing.T) {
	c := config.Default()
	c.MinLocations, c.MaxLocations = 2, 3

	_, err := tsp.NewSearcher(tsp.DFS, c.SearchOptions()...)
	require.NoError(t, err)

	c.MinLocations = 4
	_, err = tsp.NewSearcher(tsp.DFS, c.SearchOptions()...)
	assert.ErrorIs(t, err, tsp.ErrOptionViolation)
}

func TestMarshal_RoundTrip(t *testing.T) {
	c := config.Default()
	c.Start = "Depok"
	c.Algorithm = tsp.BFS
	b, err := c.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(b), "algorithm: bfs")

	back, err := config.Load(writeFile(t, string(b)))
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
