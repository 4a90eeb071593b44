package geometry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectionOfSize(t *testing.T, n int) *Collection {
	t.Helper()
	c := New("")
	for i := 0; i < n; i++ {
		x := float64(i * 2)
		wkt := fmt.Sprintf("POLYGON((%f 0,%f 0,%f 1,%f 1,%f 0))", x, x+1, x+1, x, x)
		c.Append(Record{ID: fmt.Sprintf("orig-%d", i), Geometry: mustGeom(t, wkt)})
	}
	return c
}

func TestReindexZeroBased(t *testing.T) {
	c := collectionOfSize(t, 3)
	c.Reindex("")

	assert.Equal(t, "0", c.Record(0).ID)
	assert.Equal(t, "1", c.Record(1).ID)
	assert.Equal(t, "2", c.Record(2).ID)
}

func TestReindexPrefixPadding(t *testing.T) {
	t.Run("TwoDigits", func(t *testing.T) {
		c := collectionOfSize(t, 12)
		c.Reindex("X")

		assert.Equal(t, "X.01", c.Record(0).ID)
		assert.Equal(t, "X.12", c.Record(11).ID)
	})

	t.Run("ThreeDigits", func(t *testing.T) {
		c := collectionOfSize(t, 150)
		c.Reindex("X")

		assert.Equal(t, "X.001", c.Record(0).ID)
		assert.Equal(t, "X.042", c.Record(41).ID)
		assert.Equal(t, "X.150", c.Record(149).ID)
	})
}

func TestReindexPreservesOrderAndData(t *testing.T) {
	c := New("", Record{
		ID:       "old",
		Geometry: mustGeom(t, "POLYGON((0 0,1 0,1 1,0 1,0 0))"),
		Attrs:    map[string]any{"glac_name": "keep me"},
	})
	area := c.Record(0).Geometry.Area()

	c.Reindex("G")

	require.Equal(t, 1, c.Len())
	assert.Equal(t, "G.1", c.Record(0).ID)
	assert.Equal(t, "keep me", c.Record(0).Attrs["glac_name"])
	assert.Equal(t, area, c.Record(0).Geometry.Area())
}
