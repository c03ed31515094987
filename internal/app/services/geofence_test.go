package services

import (
	"math"
	"testing"
)

func TestHaversineMeters(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: -6.200000, lng1: 106.816666,
			lat2: -6.200000, lng2: 106.816666,
			want: 0, tolerance: 0.001,
		},
		{
			// Roughly 111m per 0.001 degree of latitude
			name: "one millidegree north",
			lat1: -6.200000, lng1: 106.816666,
			lat2: -6.199000, lng2: 106.816666,
			want: 111.2, tolerance: 1,
		},
		{
			// Jakarta (Monas) to Bandung (Gedung Sate), about 118km
			name: "jakarta to bandung",
			lat1: -6.175392, lng1: 106.827153,
			lat2: -6.902477, lng2: 107.618782,
			want: 118000, tolerance: 2000,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := haversineMeters(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			if math.Abs(got-tc.want) > tc.tolerance {
				t.Errorf("haversineMeters() = %.1f, want %.1f ± %.1f", got, tc.want, tc.tolerance)
			}
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	ab := haversineMeters(-6.2, 106.8, -6.9, 107.6)
	ba := haversineMeters(-6.9, 107.6, -6.2, 106.8)
	if math.Abs(ab-ba) > 0.0001 {
		t.Errorf("distance not symmetric: %f vs %f", ab, ba)
	}
}
