package vecio

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/peterstace/simplefeatures/geom"

	"github.com/glacmap/outlines/pkg/constants"
	"github.com/glacmap/outlines/pkg/errors"
	"github.com/glacmap/outlines/pkg/geometry"
)

// ReadShapefile reads a polygon shapefile into a collection. Ring
// orientation follows the shapefile convention: clockwise rings are
// shells, counter-clockwise rings are holes assigned to the first shell
// containing them. DBF attributes are carried as string values. The
// collection name is the file's base name without extension.
func ReadShapefile(path string) (*geometry.Collection, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer reader.Close()

	fields := reader.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}

	c := geometry.New(sniffCRS(path))

	row := 0
	for reader.Next() {
		_, shape := reader.Shape()

		g, err := shapeGeometry(shape)
		if err != nil {
			return nil, errors.WrapParse("shapefile", path, err)
		}

		attrs := make(map[string]any, len(names))
		for i, name := range names {
			attrs[name] = reader.ReadAttribute(row, i)
		}

		c.Append(geometry.Record{
			ID:       strconv.Itoa(row),
			Geometry: g,
			Attrs:    attrs,
		})
		row++
	}
	if err := reader.Err(); err != nil {
		return nil, errors.WrapParse("shapefile", path, err)
	}

	base := filepath.Base(path)
	c.SetName(strings.TrimSuffix(base, filepath.Ext(base)))
	return c, nil
}

// sniffCRS inspects the .prj sidecar. Geographic reference systems map to
// the default lon/lat CRS; projected systems keep the raw WKT so a later
// proj parse fails with a useful message instead of silently assuming
// degrees. A missing sidecar also means the default.
func sniffCRS(shpPath string) string {
	data, err := os.ReadFile(strings.TrimSuffix(shpPath, filepath.Ext(shpPath)) + ".prj")
	if err != nil {
		return constants.DefaultCRS
	}
	wkt := string(data)
	if strings.Contains(wkt, "PROJCS") {
		return strings.TrimSpace(wkt)
	}
	return constants.DefaultCRS
}

// shapeGeometry converts a shapefile shape into a polygon or multipolygon.
func shapeGeometry(shape shp.Shape) (geom.Geometry, error) {
	poly, ok := shape.(*shp.Polygon)
	if !ok {
		return geom.Geometry{}, errors.New("shapefile record is not a polygon")
	}

	var shells, holes []geom.LineString
	numParts := len(poly.Parts)
	for p := 0; p < numParts; p++ {
		start := int(poly.Parts[p])
		end := len(poly.Points)
		if p+1 < numParts {
			end = int(poly.Parts[p+1])
		}
		pts := poly.Points[start:end]
		if len(pts) < 3 {
			continue
		}

		ring := ringLineString(pts)
		// Shapefile shells wind clockwise (negative signed area).
		if signedArea(pts) < 0 {
			shells = append(shells, ring)
		} else {
			holes = append(holes, ring)
		}
	}

	if len(shells) == 0 {
		// Degenerate winding; treat every ring as a shell rather than
		// dropping the record.
		shells, holes = holes, nil
	}

	polys := make([]geom.Polygon, len(shells))
	assigned := make([]bool, len(holes))
	for i, shell := range shells {
		rings := []geom.LineString{shell}
		shellPoly := geom.NewPolygon([]geom.LineString{shell}).AsGeometry()
		for h, hole := range holes {
			if assigned[h] {
				continue
			}
			inside, err := geom.Contains(shellPoly, holePoint(hole))
			if err != nil {
				return geom.Geometry{}, err
			}
			if inside {
				rings = append(rings, hole)
				assigned[h] = true
			}
		}
		polys[i] = geom.NewPolygon(rings)
	}

	if len(polys) == 1 {
		return polys[0].AsGeometry(), nil
	}
	return geom.NewMultiPolygon(polys).AsGeometry(), nil
}

// ringLineString builds a closed ring from shapefile points.
func ringLineString(pts []shp.Point) geom.LineString {
	coords := make([]float64, 0, 2*(len(pts)+1))
	for _, pt := range pts {
		coords = append(coords, pt.X, pt.Y)
	}
	if pts[0] != pts[len(pts)-1] {
		coords = append(coords, pts[0].X, pts[0].Y)
	}
	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
}

// signedArea computes the shoelace area of a ring; positive for
// counter-clockwise winding.
func signedArea(pts []shp.Point) float64 {
	var sum float64
	for i := 0; i < len(pts); i++ {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// holePoint returns a vertex of the hole ring as a point geometry for the
// shell containment test.
func holePoint(ring geom.LineString) geom.Geometry {
	xy := ring.Coordinates().GetXY(0)
	return geom.NewPoint(geom.Coordinates{XY: xy}).AsGeometry()
}
