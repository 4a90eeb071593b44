package geometry

import (
	"fmt"
	"math"

	"github.com/ctessum/geom/proj"
	"github.com/peterstace/simplefeatures/geom"

	"github.com/glacmap/outlines/pkg/errors"
	"github.com/glacmap/outlines/pkg/rgi"
)

// ReferenceLoader loads a reference inventory collection from a resolved
// file path. It is the storage collaborator of the join pipeline; the
// internal/vecio package provides the standard implementation.
type ReferenceLoader func(path string) (*Collection, error)

// refPoint is a reference record reduced to its representative interior
// point.
type refPoint struct {
	id    string
	point geom.XY
	attrs map[string]any
}

// JoinedRGI attaches attributes from the reference glacier inventory to
// each record and returns the result as a new collection, leaving the
// receiver untouched. The reference file is resolved by region and version
// under dir, loaded through load, reduced to the records intersecting the
// receiver's bounding envelope, and then reduced further to one
// representative interior point per reference record. Each receiver record
// is joined with every reference point it contains: one output row per
// match, and one row with the original attributes when nothing matches.
//
// Representative points are computed in a UTM zone estimated from the
// receiver's extent so the interior-point construction happens in metric
// coordinates, then reprojected back to the receiver's CRS.
//
// The reference collection must share the receiver's CRS; mismatched
// reference systems are rejected.
func (c *Collection) JoinedRGI(dir, region string, load ReferenceLoader, opts ...Option) (*Collection, error) {
	o := defaultOptions().apply(opts...)

	path, err := rgi.Resolve(dir, region, o.rgiVersion)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().Str("reference", path).Msg("resolved reference inventory")

	ref, err := load(path)
	if err != nil {
		return nil, err
	}
	if ref.crs != c.crs {
		return nil, errors.NewCRSMismatchError(c.crs, ref.crs)
	}

	points, err := c.referencePoints(ref)
	if err != nil {
		return nil, err
	}
	o.logger.Info().
		Int("reference_total", ref.Len()).
		Int("reference_in_extent", len(points)).
		Msg("reduced reference inventory to representative points")

	out := New(c.crs)
	out.SetName(c.name)
	for _, r := range c.recs {
		matched := false
		for _, p := range points {
			inside, err := geom.Contains(r.Geometry, pointGeometry(p.point))
			if err != nil {
				return nil, err
			}
			if !inside {
				continue
			}
			matched = true
			attrs := r.copyAttrs()
			if attrs == nil {
				attrs = make(map[string]any, len(p.attrs)+1)
			}
			for k, v := range p.attrs {
				attrs[k] = v
			}
			attrs["rgi_id"] = p.id
			out.Append(Record{ID: r.ID, Geometry: r.Geometry, Attrs: attrs})
		}
		if !matched {
			out.Append(Record{ID: r.ID, Geometry: r.Geometry, Attrs: r.copyAttrs()})
		}
	}

	return out, nil
}

// JoinRGI is the mutating variant of JoinedRGI: the receiver's records are
// replaced with the join result.
func (c *Collection) JoinRGI(dir, region string, load ReferenceLoader, opts ...Option) error {
	joined, err := c.JoinedRGI(dir, region, load, opts...)
	if err != nil {
		return err
	}
	c.recs = joined.recs
	return nil
}

// referencePoints reduces a reference collection to the representative
// interior points of the records intersecting the receiver's envelope.
// Points are computed in an estimated local UTM CRS and transformed back.
func (c *Collection) referencePoints(ref *Collection) ([]refPoint, error) {
	bounds := c.Bounds().AsGeometry()

	src, err := proj.Parse(c.crs)
	if err != nil {
		return nil, err
	}
	dst, err := proj.Parse(estimateUTM(c.Bounds()))
	if err != nil {
		return nil, err
	}
	fwd, err := src.NewTransform(dst)
	if err != nil {
		return nil, err
	}
	inv, err := dst.NewTransform(src)
	if err != nil {
		return nil, err
	}

	var points []refPoint
	for _, r := range ref.Records() {
		if !geom.Intersects(r.Geometry, bounds) {
			continue
		}

		projected, err := transformGeometry(r.Geometry, fwd)
		if err != nil {
			return nil, err
		}
		pt, err := representativePoint(projected)
		if err != nil {
			return nil, err
		}
		x, y, err := inv(pt.X, pt.Y)
		if err != nil {
			return nil, err
		}

		points = append(points, refPoint{id: r.ID, point: geom.XY{X: x, Y: y}, attrs: r.Attrs})
	}
	return points, nil
}

// transformGeometry applies a coordinate transform to every vertex.
func transformGeometry(g geom.Geometry, tr proj.Transformer) (geom.Geometry, error) {
	var trErr error
	out := g.TransformXY(func(xy geom.XY) geom.XY {
		x, y, err := tr(xy.X, xy.Y)
		if err != nil && trErr == nil {
			trErr = err
		}
		return geom.XY{X: x, Y: y}
	})
	if trErr != nil {
		return geom.Geometry{}, trErr
	}
	return out, nil
}

// estimateUTM picks the UTM zone containing the center of the given
// lon/lat envelope.
func estimateUTM(env geom.Envelope) string {
	lon, lat := 0.0, 0.0
	if min, max, ok := env.MinMaxXYs(); ok {
		lon = (min.X + max.X) / 2
		lat = (min.Y + max.Y) / 2
	}

	zone := int(math.Floor((lon+180)/6)) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}

	s := fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", zone)
	if lat < 0 {
		s += " +south"
	}
	return s
}

// pointGeometry builds a point geometry from raw coordinates.
func pointGeometry(xy geom.XY) geom.Geometry {
	return geom.NewPoint(geom.Coordinates{XY: xy}).AsGeometry()
}
