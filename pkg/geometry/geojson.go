package geometry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/glacmap/outlines/pkg/constants"
	"github.com/glacmap/outlines/pkg/errors"
)

// geoJSONFeature is the wire form of one record.
type geoJSONFeature struct {
	Type       string          `json:"type"`
	ID         any             `json:"id,omitempty"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

// geoJSONCollection is the wire form of a collection.
type geoJSONCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

// MarshalGeoJSON encodes the collection as a GeoJSON FeatureCollection.
// Record identifiers map to feature ids and attributes to properties. The
// CRS is not encoded; GeoJSON output is assumed WGS84 per RFC 7946.
func (c *Collection) MarshalGeoJSON() ([]byte, error) {
	fc := geoJSONCollection{
		Type:     "FeatureCollection",
		Features: make([]geoJSONFeature, len(c.recs)),
	}
	for i, r := range c.recs {
		g, err := json.Marshal(r.Geometry)
		if err != nil {
			return nil, errors.WrapParse("geojson", "", err)
		}
		props := r.Attrs
		if props == nil {
			props = map[string]any{}
		}
		fc.Features[i] = geoJSONFeature{
			Type:       "Feature",
			ID:         r.ID,
			Geometry:   g,
			Properties: props,
		}
	}
	return json.MarshalIndent(fc, "", "  ")
}

// UnmarshalGeoJSON decodes a GeoJSON FeatureCollection into a collection
// with the default WGS84 CRS. Geometries are accepted without validation;
// catching invalid geometry is Validate's job, not the reader's.
func UnmarshalGeoJSON(data []byte) (*Collection, error) {
	var fc geoJSONCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, errors.WrapParse("geojson", "", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, errors.NewParseError("geojson", "",
			fmt.Sprintf("expected FeatureCollection, got %q", fc.Type), nil)
	}

	c := New("")
	for i, f := range fc.Features {
		g, err := geom.UnmarshalGeoJSON(f.Geometry, geom.NoValidate{})
		if err != nil {
			return nil, errors.WrapParse("geojson", "", err)
		}
		c.Append(Record{
			ID:       featureID(f.ID, i),
			Geometry: g,
			Attrs:    f.Properties,
		})
	}
	return c, nil
}

// featureID normalizes a GeoJSON feature id to a string, falling back to
// the feature's position when absent.
func featureID(id any, position int) string {
	switch v := id.(type) {
	case nil:
		return fmt.Sprintf("%d", position)
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// WriteGeoJSONFile writes the collection to path as GeoJSON.
func (c *Collection) WriteGeoJSONFile(path string) error {
	data, err := c.MarshalGeoJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// ReadGeoJSONFile reads a GeoJSON FeatureCollection from path. The
// collection's name is set to the file's base name without extension.
func ReadGeoJSONFile(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	c, err := UnmarshalGeoJSON(data)
	if err != nil {
		return nil, errors.WrapParse("geojson", path, err)
	}
	base := filepath.Base(path)
	c.SetName(strings.TrimSuffix(base, filepath.Ext(base)))
	return c, nil
}
