package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"SpotMap-App/internal/domain/model"
)

var (
	kyotoStation = model.LatLng{Lat: 34.9858, Lon: 135.7588}
	osakaStation = model.LatLng{Lat: 34.7024, Lon: 135.4959}
	tokyoStation = model.LatLng{Lat: 35.6812, Lon: 139.7671}
)

func TestHaversineKm_既知の距離に一致する(t *testing.T) {
	// 京都駅-大阪駅はおよそ40km
	d := HaversineKm(kyotoStation, osakaStation)
	assert.InDelta(t, 40.0, d, 3.0)

	// 同一地点はゼロ
	assert.Zero(t, HaversineKm(kyotoStation, kyotoStation))

	// 対称性
	assert.InDelta(t, HaversineKm(kyotoStation, tokyoStation), HaversineKm(tokyoStation, kyotoStation), 1e-9)
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(kyotoStation, 50000, osakaStation))
	assert.False(t, WithinRadius(kyotoStation, 10000, osakaStation))
}

func TestSelectionContains_バリアント網羅(t *testing.T) {
	assert.True(t, SelectionContains(nil, kyotoStation))
	assert.True(t, SelectionContains(model.SelectionNone{}, kyotoStation))

	circle := model.SelectionCircle{Center: kyotoStation, RadiusMeters: 50000}
	assert.True(t, SelectionContains(circle, osakaStation))
	assert.False(t, SelectionContains(circle, tokyoStation))

	rect := model.SelectionRectangle{Bounds: model.Bounds{
		MinLat: 34.5, MinLon: 135.0, MaxLat: 35.5, MaxLon: 136.0,
	}}
	assert.True(t, SelectionContains(rect, kyotoStation))
	assert.False(t, SelectionContains(rect, tokyoStation))
	// 境界上は含む
	assert.True(t, SelectionContains(rect, model.LatLng{Lat: 34.5, Lon: 135.0}))
}

func TestBoundaryContains(t *testing.T) {
	square, err := model.BoundaryFromGeoJSON([]byte(
		`{"type":"Polygon","coordinates":[[[135.0,34.0],[136.0,34.0],[136.0,35.0],[135.0,35.0],[135.0,34.0]]]}`))
	assert.NoError(t, err)

	assert.True(t, BoundaryContains(square, model.LatLng{Lat: 34.5, Lon: 135.5}))
	assert.False(t, BoundaryContains(square, tokyoStation))
	assert.False(t, BoundaryContains(nil, kyotoStation))
}

func TestComputeCenterRadius(t *testing.T) {
	coords := []model.LatLng{kyotoStation, osakaStation}
	center, radiusMeters, bbox := ComputeCenterRadius(coords, model.LatLng{})

	assert.InDelta(t, (kyotoStation.Lat+osakaStation.Lat)/2, center.Lat, 1e-9)
	// 半径は最遠点までの距離＋5kmマージン
	assert.Greater(t, radiusMeters, 20000.0)
	assert.Less(t, radiusMeters, 40000.0)
	assert.Len(t, bbox, 4)
	assert.Equal(t, osakaStation.Lon, bbox[0])
	assert.Equal(t, kyotoStation.Lon, bbox[2])
}

func TestComputeCenterRadius_空ならフォールバック(t *testing.T) {
	fallback := model.LatLng{Lat: 35.0, Lon: 135.0}
	center, radiusMeters, bbox := ComputeCenterRadius(nil, fallback)

	assert.Equal(t, fallback, center)
	assert.Zero(t, radiusMeters)
	assert.Nil(t, bbox)
}
