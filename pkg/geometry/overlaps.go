package geometry

import (
	"strconv"

	"github.com/peterstace/simplefeatures/geom"
)

// OverlapPair identifies two distinct records whose geometries share
// interior area. First always precedes Second in collection order.
type OverlapPair struct {
	First  string
	Second string
}

// overlappingPairs compares every record against every record after it and
// returns the pairs for which the overlaps predicate holds. This is O(n²)
// in geometry predicate evaluations and is intended for collections of
// tens to low thousands of records.
func (c *Collection) overlappingPairs() ([]OverlapPair, error) {
	var pairs []OverlapPair
	for i := 0; i < len(c.recs)-1; i++ {
		for j := i + 1; j < len(c.recs); j++ {
			over, err := geom.Overlaps(c.recs[i].Geometry, c.recs[j].Geometry)
			if err != nil {
				return nil, err
			}
			if over {
				pairs = append(pairs, OverlapPair{First: c.recs[i].ID, Second: c.recs[j].ID})
			}
		}
	}
	return pairs, nil
}

// Overlaps finds all pairs of records whose geometries overlap (share
// interior area without one containing the other) and returns the pairs
// together with the overlapping geometry itself: the intersection of each
// pair, decomposed into single-part pieces tagged with both source
// identifiers under the "ind1" and "ind2" attributes.
//
// The receiver is never mutated. An empty or single-record collection
// yields no pairs.
func (c *Collection) Overlaps() ([]OverlapPair, *Collection, error) {
	pairs, err := c.overlappingPairs()
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]geom.Geometry, len(c.recs))
	for _, r := range c.recs {
		byID[r.ID] = r.Geometry
	}

	out := New(c.crs)
	out.SetName(c.name)
	n := 0
	for _, pair := range pairs {
		inter, err := geom.Intersection(byID[pair.First], byID[pair.Second])
		if err != nil {
			return nil, nil, err
		}
		for _, piece := range singleParts(inter) {
			out.Append(Record{
				ID:       strconv.Itoa(n),
				Geometry: piece,
				Attrs:    map[string]any{"ind1": pair.First, "ind2": pair.Second},
			})
			n++
		}
	}

	return pairs, out, nil
}
