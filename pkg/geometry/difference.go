package geometry

import (
	"github.com/peterstace/simplefeatures/geom"

	"github.com/glacmap/outlines/pkg/errors"
)

// Change labels a difference piece by which side of the comparison it
// came from.
type Change string

const (
	// ChangeAdded marks area present in the receiver but not in the other
	// collection.
	ChangeAdded Change = "added"

	// ChangeRemoved marks area present in the other collection but not in
	// the receiver.
	ChangeRemoved Change = "removed"
)

// ChangeAttr is the attribute key difference pieces are labeled under.
const ChangeAttr = "change"

// Difference computes the symmetric difference between the dissolved
// geometry of the receiver and the dissolved geometry of other. Area only
// in the receiver is labeled "added", area only in other is labeled
// "removed"; each side is decomposed into single-part pieces. The result
// is a new collection ordered added-then-removed with fresh sequential
// identifiers. Neither input is mutated.
//
// Both collections must share a CRS; mismatched reference systems are
// rejected rather than silently unioned.
func (c *Collection) Difference(other *Collection) (*Collection, error) {
	if c.crs != other.crs {
		return nil, errors.NewCRSMismatchError(c.crs, other.crs)
	}

	selfGeom, err := c.Dissolve()
	if err != nil {
		return nil, err
	}
	otherGeom, err := other.Dissolve()
	if err != nil {
		return nil, err
	}

	added, err := geom.Difference(selfGeom, otherGeom)
	if err != nil {
		return nil, err
	}
	removed, err := geom.Difference(otherGeom, selfGeom)
	if err != nil {
		return nil, err
	}

	out := New(c.crs)
	out.SetName(c.name)
	for _, piece := range singleParts(added) {
		out.Append(Record{Geometry: piece, Attrs: map[string]any{ChangeAttr: string(ChangeAdded)}})
	}
	for _, piece := range singleParts(removed) {
		out.Append(Record{Geometry: piece, Attrs: map[string]any{ChangeAttr: string(ChangeRemoved)}})
	}
	out.Reindex("")

	return out, nil
}
