package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationFailedError(t *testing.T) {
	err := NewValidationFailedError("batch_2019", 2, 1, 0, []string{
		"errors/batch_2019_overlaps.geojson",
		"errors/batch_2019_invalid.geojson",
	})

	if !errors.Is(err, ErrValidationFailed) {
		t.Error("ValidationFailedError should match ErrValidationFailed")
	}
	if !IsValidationFailed(err) {
		t.Error("IsValidationFailed should return true")
	}

	msg := err.Error()
	for _, want := range []string{"batch_2019", "2 overlapping pairs", "1 invalid geometries", "errors/batch_2019_overlaps.geojson"} {
		if !contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
	if contains(msg, "multi-part") {
		t.Errorf("error message %q should not mention multi-part when count is zero", msg)
	}
}

func TestReferenceNotFoundError(t *testing.T) {
	err := NewReferenceNotFoundError("/data/rgi", "RGI2000-v7.0-G-06_iceland", []string{
		"/data/rgi/RGI2000-v7.0-G-06_iceland.shp",
		"/data/rgi/RGI2000-v7.0-G-06_iceland/RGI2000-v7.0-G-06_iceland.shp",
	})

	if !errors.Is(err, ErrNotFound) {
		t.Error("ReferenceNotFoundError should match ErrNotFound")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true")
	}

	msg := err.Error()
	for _, want := range []string{"/data/rgi", "RGI2000-v7.0-G-06_iceland", "RGI2000-v7.0-G-06_iceland/RGI2000-v7.0-G-06_iceland.shp"} {
		if !contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestCRSMismatchError(t *testing.T) {
	err := NewCRSMismatchError("+proj=longlat +datum=WGS84", "+proj=utm +zone=33")

	if !errors.Is(err, ErrCRSMismatch) {
		t.Error("CRSMismatchError should match ErrCRSMismatch")
	}
	if !IsCRSMismatch(err) {
		t.Error("IsCRSMismatch should return true")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("version", "v5.0", "unknown reference inventory version")

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if !contains(err.Error(), "version") {
		t.Errorf("error message %q missing field name", err.Error())
	}
}

func TestWrapHelpers(t *testing.T) {
	t.Run("NilErrors", func(t *testing.T) {
		if WrapIO("read", "/tmp/x", nil) != nil {
			t.Error("WrapIO(nil) should return nil")
		}
		if WrapParse("geojson", "x.geojson", nil) != nil {
			t.Error("WrapParse(nil) should return nil")
		}
	})

	t.Run("Unwrap", func(t *testing.T) {
		base := errors.New("disk full")
		err := WrapIO("write", "/tmp/out.geojson", base)
		if !errors.Is(err, base) {
			t.Error("wrapped IOError should unwrap to the base error")
		}

		perr := WrapParse("shapefile", "ref.shp", errors.New("bad header"))
		var parseErr *ParseError
		if !errors.As(perr, &parseErr) {
			t.Error("WrapParse should produce a *ParseError")
		}
	})
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
