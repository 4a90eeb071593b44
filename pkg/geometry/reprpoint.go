package geometry

import (
	"github.com/peterstace/simplefeatures/geom"

	"github.com/glacmap/outlines/pkg/errors"
)

// representativePoint returns a point guaranteed to lie in the interior of
// an areal geometry, unlike the centroid which can fall outside concave
// shapes. The point is found by intersecting the geometry with a
// horizontal line through the middle of its envelope and taking the
// midpoint of the widest resulting segment.
func representativePoint(g geom.Geometry) (geom.XY, error) {
	env := g.Envelope()
	min, max, ok := env.MinMaxXYs()
	if !ok {
		return geom.XY{}, errors.New("representative point of empty geometry")
	}

	midY := (min.Y + max.Y) / 2
	margin := (max.X-min.X)*0.01 + 1e-9
	scan := geom.NewLineString(geom.NewSequence([]float64{
		min.X - margin, midY,
		max.X + margin, midY,
	}, geom.DimXY))

	clipped, err := geom.Intersection(g, scan.AsGeometry())
	if err != nil {
		return geom.XY{}, err
	}

	best, ok := widestSegmentMidpoint(clipped)
	if ok {
		return best, nil
	}

	// Tangency can leave nothing but points on the scan line; fall back to
	// the centroid, which is interior for the shapes this degenerates on.
	centroid, ok := g.Centroid().XY()
	if !ok {
		return geom.XY{}, errors.New("representative point of degenerate geometry")
	}
	return centroid, nil
}

// widestSegmentMidpoint finds the longest line piece in a clipped scan
// result and returns its midpoint.
func widestSegmentMidpoint(g geom.Geometry) (geom.XY, bool) {
	var (
		best    geom.XY
		bestLen float64
		found   bool
	)
	for _, piece := range singleParts(g) {
		ls, ok := piece.AsLineString()
		if !ok {
			continue
		}
		if l := ls.Length(); l > bestLen {
			seq := ls.Coordinates()
			a := seq.GetXY(0)
			b := seq.GetXY(seq.Length() - 1)
			best = geom.XY{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
			bestLen = l
			found = true
		}
	}
	return best, found
}
