package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/glacmap/outlines"
	"github.com/glacmap/outlines/pkg/constants"
	"github.com/glacmap/outlines/pkg/errors"
	"github.com/glacmap/outlines/pkg/geometry"
	"github.com/glacmap/outlines/pkg/rgi"
)

// NewValidateCommand creates the validate command.
func (a *App) NewValidateCommand() *cobra.Command {
	var overlapOK, multiOK bool

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check outlines for overlaps, invalid rings and multi-part geometries",
		Long: `Validate runs three checks over a dataset of glacier outlines: pairwise
overlap detection, ring validity, and multi-part decomposition. Repeated
vertices are removed from every outline regardless of check results.

Outlines failing a check are written to review files under
<workdir>/errors; a dataset that passes all checks is written to
<workdir>/cleaned. The workdir defaults to the input file's directory.

Examples:
  outlines validate mapping/iceland_2019.geojson
  outlines validate mapping/iceland_2019.shp --multi-ok`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := outlines.Load(args[0])
			if err != nil {
				return err
			}

			opts := a.pipelineOptions()
			if a.config.Workdir == "" {
				opts = append(opts, geometry.WithWorkdir(filepath.Dir(args[0])))
			}
			if overlapOK {
				opts = append(opts, geometry.WithOverlapOK())
			}
			if multiOK {
				opts = append(opts, geometry.WithMultiOK())
			}

			report := validateReport{File: args[0], Records: c.Len(), Status: "ok"}
			err = c.Validate(opts...)

			var failed *errors.ValidationFailedError
			switch {
			case err == nil:
				workdir := a.config.Workdir
				if workdir == "" {
					workdir = filepath.Dir(args[0])
				}
				report.Cleaned = filepath.Join(workdir, constants.CleanedDir, c.Name()+constants.OutputExt)
			case errors.As(err, &failed):
				report.Status = "failed"
				report.Overlaps = failed.Overlaps
				report.Invalid = failed.Invalid
				report.MultiPart = failed.MultiPart
				report.ReviewFiles = failed.ReviewFiles
			default:
				return err
			}

			if renderErr := a.render(cmd, report, report.text); renderErr != nil {
				return renderErr
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&overlapOK, "overlap-ok", false, "permit overlapping outlines")
	cmd.Flags().BoolVar(&multiOK, "multi-ok", false, "permit multi-part outlines")

	return cmd
}

// NewDiffCommand creates the diff command.
func (a *App) NewDiffCommand() *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compute the difference between two mapping states",
		Long: `Diff dissolves each dataset and computes their symmetric difference.
Area present only in the new dataset is labeled "added", area present
only in the old dataset is labeled "removed". Each side is decomposed
into single-part pieces.

Examples:
  outlines diff survey_2018.geojson survey_2024.geojson
  outlines diff old.geojson new.geojson --write changes.geojson`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldC, err := outlines.Load(args[0])
			if err != nil {
				return err
			}
			newC, err := outlines.Load(args[1])
			if err != nil {
				return err
			}

			diff, err := newC.Difference(oldC)
			if err != nil {
				return err
			}

			report := diffReport{Old: args[0], New: args[1]}
			for _, rec := range diff.Records() {
				switch rec.Attrs[geometry.ChangeAttr] {
				case string(geometry.ChangeAdded):
					report.Added++
				case string(geometry.ChangeRemoved):
					report.Removed++
				}
			}

			if write != "" {
				diff.SetName(strings.TrimSuffix(filepath.Base(write), filepath.Ext(write)))
				if err := outlines.Save(diff, write); err != nil {
					return err
				}
				report.Written = write
			}

			return a.render(cmd, report, report.text)
		},
	}

	cmd.Flags().StringVar(&write, "write", "", "write the difference pieces to this GeoJSON file")

	return cmd
}

// NewJoinCommand creates the join command.
func (a *App) NewJoinCommand() *cobra.Command {
	var region, write string

	cmd := &cobra.Command{
		Use:   "join <file>",
		Short: "Join outlines against the reference glacier inventory",
		Long: `Join locates the reference inventory shapefile for a region under
--rgi-dir, computes a representative point for each reference glacier,
and attaches the reference attributes to every outline containing such a
point. Outlines without a match are kept unchanged.

The region may be given as an index (1..19) or a region name.

Examples:
  outlines join mapping/iceland.geojson --rgi-dir ~/rgi --region iceland
  outlines join mapping/alaska.geojson --rgi-dir ~/rgi --region 1 --rgi-version v6.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.RGIDir == "" {
				return errors.NewValidationError("rgi-dir", "",
					"reference inventory directory is required (--rgi-dir or OUTLINES_RGI_DIR)")
			}
			if region == "" {
				return errors.NewValidationError("region", "", "region is required")
			}

			c, err := outlines.Load(args[0])
			if err != nil {
				return err
			}

			joined, err := outlines.JoinedRGI(c, a.config.RGIDir, region, a.pipelineOptions()...)
			if err != nil {
				return err
			}

			report := joinReport{File: args[0], Region: region, Records: joined.Len()}
			for _, rec := range joined.Records() {
				if _, ok := rec.Attrs["rgi_id"]; ok {
					report.Matched++
				}
			}

			if write == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				write = base + "_rgi" + constants.OutputExt
			}
			if err := outlines.Save(joined, write); err != nil {
				return err
			}
			report.Written = write

			return a.render(cmd, report, report.text)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "inventory region index or name")
	cmd.Flags().StringVar(&write, "write", "", "output file (default: <input>_rgi.geojson)")

	return cmd
}

// NewReindexCommand creates the reindex command.
func (a *App) NewReindexCommand() *cobra.Command {
	var prefix, write string

	cmd := &cobra.Command{
		Use:   "reindex <file>",
		Short: "Assign fresh sequential identifiers to all outlines",
		Long: `Reindex replaces every outline identifier with a fresh sequential one.
Without a prefix, identifiers are zero-based integers. With a prefix,
identifiers take the form <prefix>.NN with one-based zero-padded numbers
wide enough for the dataset.

Examples:
  outlines reindex mapping/iceland.geojson
  outlines reindex mapping/iceland.geojson --prefix ISL-2024 --write out.geojson`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := outlines.Load(args[0])
			if err != nil {
				return err
			}

			c.Reindex(prefix)

			if write == "" {
				write = args[0]
			}
			if err := outlines.Save(c, write); err != nil {
				return err
			}

			report := reindexReport{File: args[0], Records: c.Len(), Prefix: prefix, Written: write}
			return a.render(cmd, report, report.text)
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "identifier prefix (empty for zero-based integers)")
	cmd.Flags().StringVar(&write, "write", "", "output file (default: overwrite the input)")

	return cmd
}

// NewRegionsCommand creates the regions command.
func (a *App) NewRegionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the reference inventory regions",
		Long: `Regions lists the glacier inventory regions for the selected version
with the index accepted by the join command.

Examples:
  outlines regions
  outlines regions --rgi-version v6.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := rgi.Regions(a.config.RGIVersion)
			if names == nil {
				return errors.NewValidationError("rgi-version", a.config.RGIVersion,
					fmt.Sprintf("unknown reference inventory version (supported: %v)", rgi.Versions))
			}

			report := regionsReport{Version: a.config.RGIVersion}
			for i, name := range names {
				report.Regions = append(report.Regions, regionEntry{
					Index:   i + 1,
					Name:    name,
					Display: regionDisplayName(name),
				})
			}

			return a.render(cmd, report, report.text)
		},
	}

	return cmd
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "outlines %s (commit %s, built %s)\n",
				a.version, a.commit, a.date)
			return nil
		},
	}
}

// regionDisplayName turns a canonical region file name into a readable
// label, e.g. "RGI2000-v7.0-G-06_iceland" into "Iceland".
func regionDisplayName(name string) string {
	label := name
	if i := strings.LastIndex(label, "-G-"); i >= 0 {
		label = label[i+len("-G-"):]
	}
	// Drop the numeric and version prefixes, e.g. "06_" and "rgi60_"
	parts := strings.Split(label, "_")
	var words []string
	for _, p := range parts {
		if p == "" || isDigits(p) || strings.HasPrefix(p, "rgi") {
			continue
		}
		words = append(words, p)
	}
	title := cases.Title(language.English)
	return title.String(strings.Join(words, " "))
}

// isDigits reports whether s consists solely of ASCII digits.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
