package routing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatDistance_Formula(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"equator one degree", 0, 0, 0, 1},
		{"diagonal", 10, 10, 20, 30},
		{"southern west", -33.9461, 151.1772, -37.669, 144.841},
		{"identical", 45, 45, 45, 45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := math.Sqrt((tc.lat1-tc.lat2)*(tc.lat1-tc.lat2)+(tc.lon1-tc.lon2)*(tc.lon1-tc.lon2)) * 60
			assert.InDelta(t, want, FlatDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2), 1e-9)
		})
	}
	assert.Equal(t, 60.0, FlatDistance(0, 0, 0, 1))
}

func TestInitialBearing(t *testing.T) {
	assert.InDelta(t, 90.0, InitialBearing(0, 0, 0, 1), 1e-9)
	assert.InDelta(t, 270.0, InitialBearing(0, 1, 0, 0), 1e-9)
	assert.InDelta(t, 0.0, InitialBearing(0, 0, 1, 0), 1e-9)
	assert.InDelta(t, 180.0, InitialBearing(1, 0, 0, 0), 1e-9)
	assert.InDelta(t, 60.2773, InitialBearing(10, 10, 20, 30), 1e-4)
}

func TestInitialBearing_ReverseIsNotSimpleComplement(t *testing.T) {
	forward := InitialBearing(10, 10, 20, 30)
	reverse := InitialBearing(20, 30, 10, 10)

	assert.InDelta(t, 245.5232, reverse, 1e-4)
	assert.Greater(t, math.Abs(math.Mod(forward+180, 360)-reverse), 1.0)
}

func TestInitialBearing_Range(t *testing.T) {
	for lat := -80.0; lat <= 80; lat += 20 {
		for lon := -170.0; lon <= 170; lon += 34 {
			h := InitialBearing(lat, lon, -lat/2, lon/3)
			assert.GreaterOrEqual(t, h, 0.0)
			assert.Less(t, h, 360.0)
		}
	}
}

func TestGeoEdge_DerivedValues(t *testing.T) {
	sea := airport("KSEA", 47.4502, -122.3088, "JA-a")
	pdx := airport("KPDX", 45.5898, -122.5951, "JA-a")

	e := NewGeoEdge(sea, pdx)

	assert.Equal(t, "KSEA", e.Origin().Identifier)
	assert.Equal(t, "KPDX", e.Destination().Identifier)
	assert.InDelta(t, 112.9380, e.Distance(), 1e-3)
	assert.InDelta(t, 186.1489, e.Heading(), 1e-3)
	assert.InDelta(t, e.Distance()/450, e.Hours(450), 1e-12)
}

func TestGeoEdge_SettersRecompute(t *testing.T) {
	a := airport("AAAA", 0, 0)
	b := airport("BBBB", 0, 1)
	c := airport("CCCC", 1, 0)

	e := NewGeoEdge(a, b)
	assert.InDelta(t, 60.0, e.Distance(), 1e-9)
	assert.InDelta(t, 90.0, e.Heading(), 1e-9)

	e.SetDestination(c)
	assert.Equal(t, "CCCC", e.Destination().Identifier)
	assert.InDelta(t, 60.0, e.Distance(), 1e-9)
	assert.InDelta(t, 0.0, e.Heading(), 1e-9)

	e.SetOrigin(b)
	assert.InDelta(t, math.Sqrt2*60, e.Distance(), 1e-9)
	assert.InDelta(t, InitialBearing(0, 1, 1, 0), e.Heading(), 1e-12)
}

func TestGeoEdge_ZeroDistance(t *testing.T) {
	a := airport("AAAA", 12.5, 7.25)
	b := airport("BBBB", 12.5, 7.25)

	e := NewGeoEdge(a, b)
	assert.Equal(t, 0.0, e.Distance())
	assert.Equal(t, 0.0, e.Hours(100))
}
