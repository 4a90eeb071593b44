package geometry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glacmap/outlines/pkg/errors"
	"github.com/glacmap/outlines/pkg/logging"
)

func TestValidateCleanCollection(t *testing.T) {
	dir := t.TempDir()
	c := New("",
		rec(t, "a", "POLYGON((0 0,1 0,1 1,0 1,0 0))"),
		rec(t, "b", "POLYGON((5 5,6 5,6 6,5 6,5 5))"),
	)
	c.SetName("clean_batch")

	err := c.Validate(WithWorkdir(dir), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	// No review files, exactly one cleaned output.
	_, statErr := os.Stat(filepath.Join(dir, "errors"))
	assert.True(t, os.IsNotExist(statErr), "errors/ should not exist for a clean collection")

	entries, readErr := os.ReadDir(filepath.Join(dir, "cleaned"))
	require.NoError(t, readErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "clean_batch.geojson", entries[0].Name())

	// The cleaned file round-trips.
	back, err := ReadGeoJSONFile(filepath.Join(dir, "cleaned", "clean_batch.geojson"))
	require.NoError(t, err)
	assert.Equal(t, 2, back.Len())
}

func TestValidateOverlapFailure(t *testing.T) {
	dir := t.TempDir()
	c := New("",
		rec(t, "west", "POLYGON((0 0,2 0,2 2,0 2,0 0))"),
		rec(t, "east", "POLYGON((1 1,3 1,3 3,1 3,1 1))"),
	)
	c.SetName("overlapping")

	err := c.Validate(WithWorkdir(dir), WithLogger(logging.NewNopLogger()))
	require.Error(t, err)
	assert.True(t, errors.IsValidationFailed(err))

	var vfe *errors.ValidationFailedError
	require.ErrorAs(t, err, &vfe)
	assert.Equal(t, 1, vfe.Overlaps)
	assert.Zero(t, vfe.Invalid)
	assert.Zero(t, vfe.MultiPart)

	review := filepath.Join(dir, "errors", "overlapping_overlaps.geojson")
	overlaps, readErr := ReadGeoJSONFile(review)
	require.NoError(t, readErr)
	require.Equal(t, 1, overlaps.Len())
	assert.Equal(t, "west", overlaps.Record(0).Attrs["ind1"])
	assert.Equal(t, "east", overlaps.Record(0).Attrs["ind2"])

	// Nothing was written to cleaned/.
	_, statErr := os.Stat(filepath.Join(dir, "cleaned"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestValidateOverlapOK(t *testing.T) {
	dir := t.TempDir()
	c := New("",
		rec(t, "west", "POLYGON((0 0,2 0,2 2,0 2,0 0))"),
		rec(t, "east", "POLYGON((1 1,3 1,3 3,1 3,1 1))"),
	)
	c.SetName("permitted")

	err := c.Validate(WithWorkdir(dir), WithOverlapOK(), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	// The review file is still written for inspection.
	_, statErr := os.Stat(filepath.Join(dir, "errors", "permitted_overlaps.geojson"))
	assert.NoError(t, statErr)

	// And the cleaned output exists.
	_, statErr = os.Stat(filepath.Join(dir, "cleaned", "permitted.geojson"))
	assert.NoError(t, statErr)
}

func TestValidateInvalidGeometry(t *testing.T) {
	dir := t.TempDir()
	c := New("",
		rec(t, "good", "POLYGON((5 5,6 5,6 6,5 6,5 5))"),
		// Bowtie: self-intersecting ring.
		rec(t, "bowtie", "POLYGON((0 0,2 2,2 0,0 2,0 0))"),
	)
	c.SetName("with_invalid")

	err := c.Validate(WithWorkdir(dir), WithLogger(logging.NewNopLogger()))
	require.Error(t, err)

	var vfe *errors.ValidationFailedError
	require.ErrorAs(t, err, &vfe)
	assert.Equal(t, 1, vfe.Invalid)

	invalid, readErr := ReadGeoJSONFile(filepath.Join(dir, "errors", "with_invalid_invalid.geojson"))
	require.NoError(t, readErr)
	require.Equal(t, 1, invalid.Len())
	assert.Equal(t, "bowtie", invalid.Record(0).ID)

	reason, ok := invalid.Record(0).Attrs["reason"].(string)
	require.True(t, ok, "invalid record should carry a reason attribute")
	assert.NotEmpty(t, reason)
}

func TestValidateInvalidHasNoOverride(t *testing.T) {
	dir := t.TempDir()
	c := New("", rec(t, "bowtie", "POLYGON((0 0,2 2,2 0,0 2,0 0))"))
	c.SetName("no_override")

	// Even with every permission flag, invalid geometry fails.
	err := c.Validate(WithWorkdir(dir), WithOverlapOK(), WithMultiOK(), WithLogger(logging.NewNopLogger()))
	assert.True(t, errors.IsValidationFailed(err))
}

func TestValidateInvalidExcludedFromOverlapCheck(t *testing.T) {
	// An invalid ring sharing area with a valid record must not trip a
	// geometry error inside the pairwise search; it is reported by the
	// validity check alone.
	dir := t.TempDir()
	c := New("",
		rec(t, "sound", "POLYGON((0 0,4 0,4 4,0 4,0 0))"),
		rec(t, "bowtie", "POLYGON((1 1,3 3,3 1,1 3,1 1))"),
	)
	c.SetName("mixed")

	err := c.Validate(WithWorkdir(dir), WithLogger(logging.NewNopLogger()))
	require.Error(t, err)

	var vfe *errors.ValidationFailedError
	require.ErrorAs(t, err, &vfe)
	assert.Equal(t, 0, vfe.Overlaps)
	assert.Equal(t, 1, vfe.Invalid)

	_, statErr := os.Stat(filepath.Join(dir, "errors", "mixed_overlaps.geojson"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestValidateMultiPart(t *testing.T) {
	dir := t.TempDir()
	c := New("",
		rec(t, "single", "POLYGON((0 0,1 0,1 1,0 1,0 0))"),
		rec(t, "double", "MULTIPOLYGON(((2 2,3 2,3 3,2 3,2 2)),((4 4,5 4,5 5,4 5,4 4)))"),
	)
	c.SetName("with_multi")

	t.Run("FailsByDefault", func(t *testing.T) {
		err := c.Copy().Validate(WithWorkdir(dir), WithLogger(logging.NewNopLogger()))
		require.Error(t, err)

		var vfe *errors.ValidationFailedError
		require.ErrorAs(t, err, &vfe)
		assert.Equal(t, 1, vfe.MultiPart)

		// The review file holds the original multi-part record, not its
		// decomposition.
		multi, readErr := ReadGeoJSONFile(filepath.Join(dir, "errors", "with_multi_multi.geojson"))
		require.NoError(t, readErr)
		require.Equal(t, 1, multi.Len())
		assert.Equal(t, "double", multi.Record(0).ID)
		assert.Equal(t, 2, numParts(multi.Record(0).Geometry))
	})

	t.Run("PermittedWithMultiOK", func(t *testing.T) {
		workdir := t.TempDir()
		err := c.Copy().Validate(WithWorkdir(workdir), WithMultiOK(), WithLogger(logging.NewNopLogger()))
		assert.NoError(t, err)
	})
}

func TestValidateAllChecksRun(t *testing.T) {
	// A collection failing all three checks reports all three at once.
	dir := t.TempDir()
	c := New("",
		rec(t, "west", "POLYGON((0 0,2 0,2 2,0 2,0 0))"),
		rec(t, "east", "POLYGON((1 1,3 1,3 3,1 3,1 1))"),
		rec(t, "bowtie", "POLYGON((10 10,12 12,12 10,10 12,10 10))"),
		rec(t, "double", "MULTIPOLYGON(((20 20,21 20,21 21,20 21,20 20)),((22 22,23 22,23 23,22 23,22 22)))"),
	)
	c.SetName("everything_wrong")

	err := c.Validate(WithWorkdir(dir), WithLogger(logging.NewNopLogger()))
	require.Error(t, err)

	var vfe *errors.ValidationFailedError
	require.ErrorAs(t, err, &vfe)
	assert.Equal(t, 1, vfe.Overlaps)
	assert.Equal(t, 1, vfe.Invalid)
	assert.Equal(t, 1, vfe.MultiPart)
	assert.Len(t, vfe.ReviewFiles, 3)
}

func TestValidateDeduplicatesVertices(t *testing.T) {
	dir := t.TempDir()
	// The second vertex repeats the first within tolerance.
	c := New("", rec(t, "a",
		"POLYGON((0 0,0.0000000001 0,1 0,1 1,0 1,0 0))"))
	c.SetName("dedup")

	require.NoError(t, c.Validate(WithWorkdir(dir), WithLogger(logging.NewNopLogger())))

	ring := c.Record(0).Geometry.MustAsPolygon().ExteriorRing()
	assert.Equal(t, 5, ring.Coordinates().Length())
}
