package geometry

import (
	"math"

	"github.com/peterstace/simplefeatures/geom"
)

// removeRepeatedPoints collapses consecutive vertices closer than tol into
// one, ring by ring. Non-areal geometries and rings that would degenerate
// below a valid ring size are returned unchanged.
func removeRepeatedPoints(g geom.Geometry, tol float64) geom.Geometry {
	switch g.Type() {
	case geom.TypePolygon:
		return dedupePolygon(g.MustAsPolygon(), tol).AsGeometry()
	case geom.TypeMultiPolygon:
		mp := g.MustAsMultiPolygon()
		polys := make([]geom.Polygon, mp.NumPolygons())
		for i := 0; i < mp.NumPolygons(); i++ {
			polys[i] = dedupePolygon(mp.PolygonN(i), tol)
		}
		return geom.NewMultiPolygon(polys).AsGeometry()
	default:
		return g
	}
}

func dedupePolygon(p geom.Polygon, tol float64) geom.Polygon {
	rings := make([]geom.LineString, 0, 1+p.NumInteriorRings())
	rings = append(rings, dedupeRing(p.ExteriorRing(), tol))
	for i := 0; i < p.NumInteriorRings(); i++ {
		rings = append(rings, dedupeRing(p.InteriorRingN(i), tol))
	}
	return geom.NewPolygon(rings)
}

// dedupeRing walks the ring's vertices keeping only those at least tol
// away from the previously kept vertex, then re-closes the ring. The
// closing vertex is never dropped.
func dedupeRing(ring geom.LineString, tol float64) geom.LineString {
	seq := ring.Coordinates()
	n := seq.Length()
	if n < 4 {
		return ring
	}

	kept := make([]float64, 0, 2*n)
	var last geom.XY
	for i := 0; i < n-1; i++ {
		xy := seq.GetXY(i)
		if i > 0 && math.Hypot(xy.X-last.X, xy.Y-last.Y) < tol {
			continue
		}
		kept = append(kept, xy.X, xy.Y)
		last = xy
	}

	// A ring needs at least three distinct vertices plus closure.
	if len(kept) < 6 {
		return ring
	}
	kept = append(kept, kept[0], kept[1])

	return geom.NewLineString(geom.NewSequence(kept, geom.DimXY))
}
