// Package geometry implements the outline validation and reconciliation
// pipeline. Its central type is Collection, an ordered set of glacier
// outline records sharing one coordinate reference system, with operations
// for overlap detection, validation and cleaning, set difference, reference
// inventory joins, and reindexing.
//
// A Collection wraps a plain record slice rather than extending a vector
// framework type, so the pipeline only depends on the geometric predicates
// it actually uses.
package geometry

import (
	"github.com/peterstace/simplefeatures/geom"

	"github.com/glacmap/outlines/pkg/constants"
)

// Record is one glacier outline: a polygon or multipolygon geometry, a
// stable identifier, and attribute fields carried through unchanged.
type Record struct {
	ID       string
	Geometry geom.Geometry
	Attrs    map[string]any
}

// copyAttrs returns a shallow copy of the record's attributes.
func (r Record) copyAttrs() map[string]any {
	if r.Attrs == nil {
		return nil
	}
	out := make(map[string]any, len(r.Attrs))
	for k, v := range r.Attrs {
		out[k] = v
	}
	return out
}

// Collection is an ordered sequence of outline records sharing one
// coordinate reference system. Validate, Reindex and JoinRGI mutate the
// collection in place; Overlaps, Difference and JoinedRGI return new
// collections and leave the receiver untouched.
type Collection struct {
	name string
	crs  string
	recs []Record
}

// New creates a collection with the given CRS and records. An empty CRS
// defaults to WGS84 geographic coordinates.
func New(crs string, recs ...Record) *Collection {
	if crs == "" {
		crs = constants.DefaultCRS
	}
	return &Collection{crs: crs, recs: recs}
}

// Name returns the collection's source name, used as the prefix for
// review and cleaned output files.
func (c *Collection) Name() string {
	return c.name
}

// SetName sets the collection's source name.
func (c *Collection) SetName(name string) {
	c.name = name
}

// CRS returns the collection's coordinate reference system string.
func (c *Collection) CRS() string {
	return c.crs
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.recs)
}

// IsEmpty reports whether the collection has no records.
func (c *Collection) IsEmpty() bool {
	return len(c.recs) == 0
}

// Record returns the record at position i.
func (c *Collection) Record(i int) Record {
	return c.recs[i]
}

// Records returns a copy of the record slice. Attribute maps and
// geometries are shared with the collection.
func (c *Collection) Records() []Record {
	out := make([]Record, len(c.recs))
	copy(out, c.recs)
	return out
}

// Append adds records to the end of the collection.
func (c *Collection) Append(recs ...Record) {
	c.recs = append(c.recs, recs...)
}

// Copy returns a deep copy of the collection. Geometries are immutable
// values and are shared; attribute maps are copied.
func (c *Collection) Copy() *Collection {
	recs := make([]Record, len(c.recs))
	for i, r := range c.recs {
		recs[i] = Record{ID: r.ID, Geometry: r.Geometry, Attrs: r.copyAttrs()}
	}
	return &Collection{name: c.name, crs: c.crs, recs: recs}
}

// Bounds returns the axis-aligned bounding envelope of all records. The
// envelope is recomputed from the members on every call.
func (c *Collection) Bounds() geom.Envelope {
	var env geom.Envelope
	for _, r := range c.recs {
		env = env.ExpandToIncludeEnvelope(r.Geometry.Envelope())
	}
	return env
}

// Dissolve merges all record geometries into one (possibly multi-part)
// geometry.
func (c *Collection) Dissolve() (geom.Geometry, error) {
	var union geom.Geometry
	for _, r := range c.recs {
		var err error
		union, err = geom.Union(union, r.Geometry)
		if err != nil {
			return geom.Geometry{}, err
		}
	}
	return union, nil
}

// singleParts decomposes a geometry into its single-part constituents.
// Polygons map to themselves, multi-part geometries to their members, and
// empty geometries to nothing.
func singleParts(g geom.Geometry) []geom.Geometry {
	if g.IsEmpty() {
		return nil
	}
	switch g.Type() {
	case geom.TypeMultiPolygon:
		mp := g.MustAsMultiPolygon()
		parts := make([]geom.Geometry, 0, mp.NumPolygons())
		for i := 0; i < mp.NumPolygons(); i++ {
			parts = append(parts, mp.PolygonN(i).AsGeometry())
		}
		return parts
	case geom.TypeMultiLineString:
		mls := g.MustAsMultiLineString()
		parts := make([]geom.Geometry, 0, mls.NumLineStrings())
		for i := 0; i < mls.NumLineStrings(); i++ {
			parts = append(parts, mls.LineStringN(i).AsGeometry())
		}
		return parts
	case geom.TypeMultiPoint:
		mp := g.MustAsMultiPoint()
		parts := make([]geom.Geometry, 0, mp.NumPoints())
		for i := 0; i < mp.NumPoints(); i++ {
			parts = append(parts, mp.PointN(i).AsGeometry())
		}
		return parts
	case geom.TypeGeometryCollection:
		gc := g.MustAsGeometryCollection()
		var parts []geom.Geometry
		for i := 0; i < gc.NumGeometries(); i++ {
			parts = append(parts, singleParts(gc.GeometryN(i))...)
		}
		return parts
	default:
		return []geom.Geometry{g}
	}
}

// numParts counts the single-part constituents of a geometry.
func numParts(g geom.Geometry) int {
	return len(singleParts(g))
}
