package distance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theoszt/DAA-DFS-dan-BFS/distance"
)

func TestNewTable_Errors(t *testing.T) {
	_, err := distance.NewTable(nil, []string{"A"})
	assert.ErrorIs(t, err, distance.ErrEmptyTable)

	_, err = distance.NewSquareTable([]string{"A", ""})
	assert.ErrorIs(t, err, distance.ErrEmptyLocation)

	_, err = distance.NewTable([]string{"A"}, []string{"B", "B"})
	assert.ErrorIs(t, err, distance.ErrDuplicateLocation)
}

func TestTable_SetLookup(t *testing.T) {
	tb, err := distance.NewTable([]string{"A", "B"}, []string{"A", "B", "C"})
	require.NoError(t, err)
	r, c := tb.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	_, ok := tb.Lookup("A", "B")
	assert.False(t, ok, "fresh table has no distances")

	require.NoError(t, tb.Set("A", "B", 7))
	km, ok := tb.Lookup("A", "B")
	require.True(t, ok)
	assert.Equal(t, 7.0, km)

	_, ok = tb.Lookup("B", "A")
	assert.False(t, ok, "tables may be asymmetric")

	assert.ErrorIs(t, tb.Set("C", "A", 1), distance.ErrUnknownLocation)
	assert.ErrorIs(t, tb.Set("A", "Z", 1), distance.ErrUnknownLocation)
	assert.ErrorIs(t, tb.Set("A", "C", -1), distance.ErrNegativeDistance)

	assert.True(t, tb.Has("A"))
	assert.False(t, tb.Has("C"), "C is only a column")
	assert.Equal(t, []string{"A", "B", "C"}, tb.Columns())
	assert.Equal(t, []string{"A", "B"}, tb.Rows())
}
