// Package constants provides shared constants used throughout the outlines
// codebase: output directory names, file permissions, geometry tolerances,
// and reference inventory defaults.
package constants

// Output location constants define where the validation pipeline writes
const (
	// ErrorsDir is the directory review files are written to when
	// validation checks fail
	ErrorsDir = "errors"

	// CleanedDir is the directory cleaned collections are written to when
	// all validation checks pass
	CleanedDir = "cleaned"

	// OverlapsSuffix is appended to the collection name for the overlap
	// review file
	OverlapsSuffix = "_overlaps"

	// InvalidSuffix is appended to the collection name for the invalid
	// geometry review file
	InvalidSuffix = "_invalid"

	// MultiSuffix is appended to the collection name for the multi-part
	// geometry review file
	MultiSuffix = "_multi"

	// OutputExt is the file extension for written collections
	OutputExt = ".geojson"
)

// Geometry constants
const (
	// VertexTolerance is the distance below which consecutive vertices are
	// collapsed into one during cleaning
	VertexTolerance = 1e-6
)

// Reference inventory constants
const (
	// DefaultRGIVersion is the reference inventory version used when the
	// caller does not specify one
	DefaultRGIVersion = "v7.0"

	// DefaultCRS is assumed for datasets with no CRS information
	DefaultCRS = "+proj=longlat +datum=WGS84 +no_defs"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
