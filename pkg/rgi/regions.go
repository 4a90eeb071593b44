// Package rgi resolves reference glacier inventory files by region and
// version. The inventory is distributed as one shapefile per region, either
// flat in a directory or nested in a subdirectory of the same name; this
// package maps a region index or canonical name to the concrete file path.
package rgi

// Versions lists the supported reference inventory versions.
var Versions = []string{"v7.0", "v6.0"}

// regions maps an inventory version to its ordered list of canonical region
// names. Region 1 is at list position 0.
var regions = map[string][]string{
	"v7.0": {
		"RGI2000-v7.0-G-01_alaska",
		"RGI2000-v7.0-G-02_western_canada_usa",
		"RGI2000-v7.0-G-03_arctic_canada_north",
		"RGI2000-v7.0-G-04_arctic_canada_south",
		"RGI2000-v7.0-G-05_greenland_periphery",
		"RGI2000-v7.0-G-06_iceland",
		"RGI2000-v7.0-G-07_svalbard_jan_mayen",
		"RGI2000-v7.0-G-08_scandinavia",
		"RGI2000-v7.0-G-09_russian_arctic",
		"RGI2000-v7.0-G-10_north_asia",
		"RGI2000-v7.0-G-11_central_europe",
		"RGI2000-v7.0-G-12_caucasus_middle_east",
		"RGI2000-v7.0-G-13_central_asia",
		"RGI2000-v7.0-G-14_south_asia_west",
		"RGI2000-v7.0-G-15_south_asia_east",
		"RGI2000-v7.0-G-16_low_latitudes",
		"RGI2000-v7.0-G-17_southern_andes",
		"RGI2000-v7.0-G-18_new_zealand",
		"RGI2000-v7.0-G-19_subantarctic_antarctic_islands",
	},
	"v6.0": {
		"01_rgi60_Alaska",
		"02_rgi60_WesternCanadaUS",
		"03_rgi60_ArcticCanadaNorth",
		"04_rgi60_ArcticCanadaSouth",
		"05_rgi60_GreenlandPeriphery",
		"06_rgi60_Iceland",
		"07_rgi60_Svalbard",
		"08_rgi60_Scandinavia",
		"09_rgi60_RussianArctic",
		"10_rgi60_NorthAsia",
		"11_rgi60_CentralEurope",
		"12_rgi60_CaucasusMiddleEast",
		"13_rgi60_CentralAsia",
		"14_rgi60_SouthAsiaWest",
		"15_rgi60_SouthAsiaEast",
		"16_rgi60_LowLatitudes",
		"17_rgi60_SouthernAndes",
		"18_rgi60_NewZealand",
		"19_rgi60_AntarcticSubantarctic",
	},
}

// Regions returns the ordered canonical region names for a version, or nil
// if the version is unknown.
func Regions(version string) []string {
	names, ok := regions[version]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}
