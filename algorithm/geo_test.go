package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineMiles(t *testing.T) {
	// 达拉斯市中心到北达拉斯（约 9 英里）
	downtown := Location{Latitude: 32.7767, Longitude: -96.797}
	north := Location{Latitude: 32.8998, Longitude: -96.7587}

	distance := HaversineMiles(downtown, north)
	require.InDelta(t, 9.0, distance, 1.0)

	// 同一点距离为 0
	require.InDelta(t, 0, HaversineMiles(downtown, downtown), 1e-9)
}

func TestHaversineSymmetry(t *testing.T) {
	a := Location{Latitude: 32.7767, Longitude: -96.797}
	b := Location{Latitude: 32.7877, Longitude: -96.8089}

	require.InDelta(t, HaversineMiles(a, b), HaversineMiles(b, a), 1e-9)
}

func TestHaversineTriangleInequality(t *testing.T) {
	a := Location{Latitude: 32.7767, Longitude: -96.797}
	b := Location{Latitude: 32.8998, Longitude: -96.7587}
	c := Location{Latitude: 32.7668, Longitude: -96.8667}

	ab := HaversineMiles(a, b)
	bc := HaversineMiles(b, c)
	ac := HaversineMiles(a, c)

	require.LessOrEqual(t, ac, ab+bc+1e-9)
}

func TestRoundMiles(t *testing.T) {
	require.Equal(t, 1.3, RoundMiles(1.25))
	require.Equal(t, 1.2, RoundMiles(1.24))
	require.Equal(t, 0.0, RoundMiles(0.04))
}
