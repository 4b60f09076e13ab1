// Package classify holds the pure derivation rules used for sales
// attribution: shipping state to region, and processing date to season.
package classify

import (
	"strings"

	"karigari/internal/models"
)

// regionEntry pairs a region with the state names that map to it. The slice
// is iterated in declared order and the first match wins, so the ordering is
// part of the contract.
type regionEntry struct {
	region models.Region
	states []string
}

var regionTable = []regionEntry{
	{models.RegionNorth, []string{
		"delhi", "punjab", "haryana", "himachal pradesh", "jammu", "kashmir",
		"uttarakhand", "uttar pradesh", "chandigarh",
	}},
	{models.RegionSouth, []string{
		"tamil nadu", "kerala", "karnataka", "andhra pradesh", "telangana",
		"puducherry",
	}},
	{models.RegionEast, []string{
		"west bengal", "odisha", "bihar", "jharkhand", "assam", "sikkim",
		"tripura", "meghalaya", "manipur", "mizoram", "nagaland",
		"arunachal pradesh",
	}},
	{models.RegionWest, []string{
		"maharashtra", "gujarat", "rajasthan", "goa",
	}},
	{models.RegionCentral, []string{
		"madhya pradesh", "chhattisgarh",
	}},
}

// Region maps a free-text state/province name to a sales region. Matching is
// case-insensitive substring containment in either direction, so "Jammu and
// Kashmir" matches the "jammu" entry and "Goa " matches "goa". Unrecognized
// or empty input falls back to Central. Never fails.
func Region(state string) models.Region {
	needle := strings.ToLower(strings.TrimSpace(state))
	if needle == "" {
		return models.RegionCentral
	}
	for _, entry := range regionTable {
		for _, name := range entry.states {
			if strings.Contains(needle, name) || strings.Contains(name, needle) {
				return entry.region
			}
		}
	}
	return models.RegionCentral
}
