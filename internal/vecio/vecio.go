// Package vecio loads and saves outline collections from vector files. It
// is the storage collaborator of the validation pipeline: GeoJSON for
// reading and writing working datasets, and read-only shapefile ingestion
// for the reference glacier inventory.
package vecio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/glacmap/outlines/pkg/errors"
	"github.com/glacmap/outlines/pkg/geometry"
)

// Load reads a collection from path, dispatching on the file extension.
// GeoJSON (.geojson, .json) and shapefiles (.shp) are supported.
func Load(path string) (*geometry.Collection, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return geometry.ReadGeoJSONFile(path)
	case ".shp":
		return ReadShapefile(path)
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, path)
	}
}

// Save writes a collection to path. Only GeoJSON output is supported;
// reference shapefiles are consumed read-only.
func Save(c *geometry.Collection, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return c.WriteGeoJSONFile(path)
	default:
		return fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, path)
	}
}
