package geometry

import (
	"os"
	"path/filepath"

	"github.com/glacmap/outlines/pkg/constants"
	"github.com/glacmap/outlines/pkg/errors"
)

// Validate runs three checks over the collection and cleans its geometries
// in place:
//
//   - overlap check: overlapping pairs fail the call unless WithOverlapOK
//     is given; the overlapping geometry is written to the errors/ location
//     for review either way. The pairwise search runs over the
//     topologically valid records only, since the overlaps predicate is
//     undefined for invalid rings; invalid records are reported by the
//     validity check instead of participating here.
//   - validity check: invalid geometries always fail the call; the invalid
//     subset, annotated with a "reason" attribute, is written for review.
//   - multi-part check: multi-part geometries fail the call unless
//     WithMultiOK is given; the offending records are written for review.
//
// All three checks run even when an earlier one fails, so a single call
// reports every defect. Regardless of outcome, consecutive vertices closer
// than the vertex tolerance are collapsed in every geometry. If all checks
// pass the cleaned collection is written to the cleaned/ location;
// otherwise a ValidationFailedError naming the review files is returned.
func (c *Collection) Validate(opts ...Option) error {
	o := defaultOptions().apply(opts...)

	prefix := c.name
	if prefix == "" {
		prefix = "outlines"
	}
	errorsDir := filepath.Join(o.workdir, constants.ErrorsDir)

	var (
		hasOverlap, hasInvalid, hasMulti bool
		overlapPairs, invalidCount       int
		multiCount                       int
		reviewFiles                      []string
	)

	// Partition by validity up front. The overlap predicate is undefined
	// over invalid rings, so overlap detection runs on the valid subset;
	// invalid records are reported by their own check below.
	valid := New(c.crs)
	invalid := New(c.crs)
	invalid.SetName(c.name)
	for _, r := range c.recs {
		if reason := r.Geometry.Validate(); reason != nil {
			attrs := r.copyAttrs()
			if attrs == nil {
				attrs = make(map[string]any, 1)
			}
			attrs["reason"] = reason.Error()
			invalid.Append(Record{ID: r.ID, Geometry: r.Geometry, Attrs: attrs})
		} else {
			valid.Append(r)
		}
	}

	// Overlap check.
	pairs, overlaps, err := valid.Overlaps()
	if err != nil {
		return err
	}
	if len(pairs) > 0 {
		overlaps.SetName(c.name)
		path := filepath.Join(errorsDir, prefix+constants.OverlapsSuffix+constants.OutputExt)
		if err := writeReview(overlaps, path); err != nil {
			return err
		}
		reviewFiles = append(reviewFiles, path)
		overlapPairs = len(pairs)

		o.logger.Warn().
			Int("pairs", len(pairs)).
			Str("review", path).
			Msg("overlapping outlines found")

		if !o.overlapOK {
			hasOverlap = true
		}
	}

	// Validity check. No override: invalid geometry always fails.
	if invalid.Len() > 0 {
		path := filepath.Join(errorsDir, prefix+constants.InvalidSuffix+constants.OutputExt)
		if err := writeReview(invalid, path); err != nil {
			return err
		}
		reviewFiles = append(reviewFiles, path)
		invalidCount = invalid.Len()
		hasInvalid = true

		o.logger.Warn().
			Int("count", invalid.Len()).
			Str("review", path).
			Msg("invalid geometries found")
	}

	// Multi-part check. The decomposition is computed once per record and
	// drives both the count comparison and the offending-record lookup.
	multi := New(c.crs)
	multi.SetName(c.name)
	for _, r := range c.recs {
		if numParts(r.Geometry) > 1 {
			multi.Append(Record{ID: r.ID, Geometry: r.Geometry, Attrs: r.copyAttrs()})
		}
	}
	if multi.Len() > 0 {
		path := filepath.Join(errorsDir, prefix+constants.MultiSuffix+constants.OutputExt)
		if err := writeReview(multi, path); err != nil {
			return err
		}
		reviewFiles = append(reviewFiles, path)
		multiCount = multi.Len()

		o.logger.Warn().
			Int("count", multi.Len()).
			Str("review", path).
			Msg("multi-part geometries found")

		if !o.multiOK {
			hasMulti = true
		}
	}

	// Clean regardless of outcome: collapse near-duplicate vertices.
	for i := range c.recs {
		c.recs[i].Geometry = removeRepeatedPoints(c.recs[i].Geometry, constants.VertexTolerance)
	}

	if hasOverlap || hasInvalid || hasMulti {
		return errors.NewValidationFailedError(prefix, overlapPairs, invalidCount, multiCount, reviewFiles)
	}

	cleaned := filepath.Join(o.workdir, constants.CleanedDir, prefix+constants.OutputExt)
	if err := writeReview(c, cleaned); err != nil {
		return err
	}
	o.logger.Info().
		Str("collection", prefix).
		Int("records", c.Len()).
		Str("output", cleaned).
		Msg("all checks passed")

	return nil
}

// writeReview writes a collection to path, creating the parent directory
// if needed.
func writeReview(c *Collection, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}
	return c.WriteGeoJSONFile(path)
}
