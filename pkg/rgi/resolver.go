package rgi

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/glacmap/outlines/pkg/errors"
)

// RegionName resolves a region identifier to its canonical name. Numeric
// identifiers (1..19) index the per-version region list; anything else is
// used as-is.
func RegionName(region, version string) (string, error) {
	names, ok := regions[version]
	if !ok {
		return "", errors.NewValidationError("version", version,
			fmt.Sprintf("unknown reference inventory version (supported: %v)", Versions))
	}

	if idx, err := strconv.Atoi(region); err == nil {
		if idx < 1 || idx > len(names) {
			return "", errors.NewValidationError("region", region,
				fmt.Sprintf("region index out of range 1..%d", len(names)))
		}
		return names[idx-1], nil
	}

	return region, nil
}

// Resolve returns the path to the reference inventory shapefile for the
// given region and version. The file is looked up first as a flat file
// (<dir>/<name>.shp), then inside a subdirectory of the same name
// (<dir>/<name>/<name>.shp). If neither exists a ReferenceNotFoundError
// naming both attempted paths is returned.
func Resolve(dir, region, version string) (string, error) {
	name, err := RegionName(region, version)
	if err != nil {
		return "", err
	}

	flat := filepath.Join(dir, name+".shp")
	nested := filepath.Join(dir, name, name+".shp")

	for _, path := range []string{flat, nested} {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.NewReferenceNotFoundError(dir, name, []string{flat, nested})
}
