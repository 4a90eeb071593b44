package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/glacmap/outlines/pkg/errors"
)

// render writes a command report to the command's output in the configured
// format. The text function renders the human-readable default; json and
// yaml marshal the report struct.
func (a *App) render(cmd *cobra.Command, report any, text func(io.Writer)) error {
	w := cmd.OutOrStdout()

	switch strings.ToLower(a.config.Format) {
	case "", "text":
		text(w)
		return nil
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.NewValidationError("format", a.config.Format, "supported formats: text, json, yaml")
	}
}

// validateReport summarizes a validate run.
type validateReport struct {
	File        string   `json:"file" yaml:"file"`
	Records     int      `json:"records" yaml:"records"`
	Status      string   `json:"status" yaml:"status"`
	Overlaps    int      `json:"overlaps,omitempty" yaml:"overlaps,omitempty"`
	Invalid     int      `json:"invalid,omitempty" yaml:"invalid,omitempty"`
	MultiPart   int      `json:"multi_part,omitempty" yaml:"multi_part,omitempty"`
	ReviewFiles []string `json:"review_files,omitempty" yaml:"review_files,omitempty"`
	Cleaned     string   `json:"cleaned,omitempty" yaml:"cleaned,omitempty"`
}

func (r validateReport) text(w io.Writer) {
	if r.Status == "ok" {
		fmt.Fprintf(w, "%s: %d outlines passed all checks\n", r.File, r.Records)
		fmt.Fprintf(w, "cleaned dataset written to %s\n", r.Cleaned)
		return
	}

	fmt.Fprintf(w, "%s: validation failed\n", r.File)
	if r.Overlaps > 0 {
		fmt.Fprintf(w, "  %d overlapping pairs\n", r.Overlaps)
	}
	if r.Invalid > 0 {
		fmt.Fprintf(w, "  %d invalid geometries\n", r.Invalid)
	}
	if r.MultiPart > 0 {
		fmt.Fprintf(w, "  %d multi-part geometries\n", r.MultiPart)
	}
	for _, f := range r.ReviewFiles {
		fmt.Fprintf(w, "  review: %s\n", f)
	}
}

// diffReport summarizes a diff run.
type diffReport struct {
	Old     string `json:"old" yaml:"old"`
	New     string `json:"new" yaml:"new"`
	Added   int    `json:"added" yaml:"added"`
	Removed int    `json:"removed" yaml:"removed"`
	Written string `json:"written,omitempty" yaml:"written,omitempty"`
}

func (r diffReport) text(w io.Writer) {
	fmt.Fprintf(w, "%s -> %s: %d added, %d removed\n", r.Old, r.New, r.Added, r.Removed)
	if r.Written != "" {
		fmt.Fprintf(w, "difference pieces written to %s\n", r.Written)
	}
}

// joinReport summarizes a join run.
type joinReport struct {
	File    string `json:"file" yaml:"file"`
	Region  string `json:"region" yaml:"region"`
	Records int    `json:"records" yaml:"records"`
	Matched int    `json:"matched" yaml:"matched"`
	Written string `json:"written" yaml:"written"`
}

func (r joinReport) text(w io.Writer) {
	fmt.Fprintf(w, "%s: %d of %d outlines matched region %s\n", r.File, r.Matched, r.Records, r.Region)
	fmt.Fprintf(w, "joined dataset written to %s\n", r.Written)
}

// reindexReport summarizes a reindex run.
type reindexReport struct {
	File    string `json:"file" yaml:"file"`
	Records int    `json:"records" yaml:"records"`
	Prefix  string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Written string `json:"written" yaml:"written"`
}

func (r reindexReport) text(w io.Writer) {
	fmt.Fprintf(w, "%s: %d outlines reindexed\n", r.File, r.Records)
	fmt.Fprintf(w, "written to %s\n", r.Written)
}

// regionEntry is one inventory region in a regions listing.
type regionEntry struct {
	Index   int    `json:"index" yaml:"index"`
	Name    string `json:"name" yaml:"name"`
	Display string `json:"display" yaml:"display"`
}

// regionsReport lists the inventory regions for a version.
type regionsReport struct {
	Version string        `json:"version" yaml:"version"`
	Regions []regionEntry `json:"regions" yaml:"regions"`
}

func (r regionsReport) text(w io.Writer) {
	fmt.Fprintf(w, "reference inventory %s\n", r.Version)
	for _, e := range r.Regions {
		fmt.Fprintf(w, "  %2d  %-32s %s\n", e.Index, e.Display, e.Name)
	}
}
