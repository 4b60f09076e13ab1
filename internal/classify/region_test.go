package classify_test

import (
	"testing"

	"karigari/internal/classify"
	"karigari/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRegion(t *testing.T) {
	tests := []struct {
		state    string
		expected models.Region
	}{
		{"Tamil Nadu", models.RegionSouth},
		{"tamil nadu", models.RegionSouth},
		{"Kerala", models.RegionSouth},
		{"Delhi", models.RegionNorth},
		{"New Delhi", models.RegionNorth},
		{"Jammu and Kashmir", models.RegionNorth},
		{"West Bengal", models.RegionEast},
		{"Odisha", models.RegionEast},
		{"Maharashtra", models.RegionWest},
		{"  Gujarat  ", models.RegionWest},
		{"Madhya Pradesh", models.RegionCentral},
		{"Random Unknown Place", models.RegionCentral},
		{"", models.RegionCentral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, classify.Region(tt.state), "state %q", tt.state)
	}
}

func TestRegionFirstDeclaredWins(t *testing.T) {
	// "Pradesh" appears in entries of several regions; the table is iterated
	// North first, so the bare fragment resolves to the first region listing
	// a containing name.
	assert.Equal(t, models.RegionNorth, classify.Region("Pradesh"))
}

func TestRegionNeverFails(t *testing.T) {
	for _, input := range []string{"", " ", "??", "12345", "a very long unrecognized state name"} {
		assert.NotPanics(t, func() { classify.Region(input) })
		assert.NotEmpty(t, classify.Region(input))
	}
}
