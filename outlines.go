// Package outlines provides the main entry point for the glacier outline
// validation and reconciliation system. It offers a high-level interface
// over the geometry pipeline: loading and saving vector datasets, running
// the validation checks, diffing mapping states, and joining outlines
// against the RGI reference inventory.
//
// Example usage:
//
//	// Load a working dataset and validate it
//	c, err := outlines.Load("mapping/iceland_2019.geojson")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := c.Validate(geometry.WithWorkdir("mapping")); err != nil {
//	    log.Fatal(err) // review files were written under mapping/errors
//	}
//
//	// Join against the reference inventory
//	joined, err := outlines.JoinedRGI(c, "rgi/", "iceland")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := outlines.Save(joined, "mapping/iceland_joined.geojson"); err != nil {
//	    log.Fatal(err)
//	}
package outlines

import (
	"github.com/glacmap/outlines/internal/vecio"
	"github.com/glacmap/outlines/pkg/geometry"
)

// Load reads an outline collection from a vector file. GeoJSON and
// shapefile inputs are supported, dispatched on the file extension.
func Load(path string) (*geometry.Collection, error) {
	return vecio.Load(path)
}

// Save writes an outline collection to a GeoJSON file.
func Save(c *geometry.Collection, path string) error {
	return vecio.Save(c, path)
}

// JoinRGI joins the collection against the reference glacier inventory
// under dir for the given region, replacing the collection's records with
// the joined rows. Reference shapefiles are located and read automatically.
func JoinRGI(c *geometry.Collection, dir, region string, opts ...geometry.Option) error {
	return c.JoinRGI(dir, region, vecio.Load, opts...)
}

// JoinedRGI is the non-mutating variant of JoinRGI. It returns a new
// collection with the joined rows and leaves c untouched.
func JoinedRGI(c *geometry.Collection, dir, region string, opts ...geometry.Option) (*geometry.Collection, error) {
	return c.JoinedRGI(dir, region, vecio.Load, opts...)
}
