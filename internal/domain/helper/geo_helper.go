package helper

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"SpotMap-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineKm 2地点間の大円距離（km）を計算
func HaversineKm(a, b model.LatLng) float64 {
	rlat1 := a.Lat * math.Pi / 180
	rlat2 := b.Lat * math.Pi / 180
	dlat := (b.Lat - a.Lat) * math.Pi / 180
	dlon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}

// HaversineMeters 2地点間の大円距離（メートル）を計算
func HaversineMeters(a, b model.LatLng) float64 {
	return HaversineKm(a, b) * 1000
}

// WithinRadius 指定座標が中心から radiusMeters 以内にあるか
func WithinRadius(center model.LatLng, radiusMeters float64, p model.LatLng) bool {
	return HaversineMeters(center, p) <= radiusMeters
}

// SelectionContains 空間選択の包含判定。バリアントを網羅的に分岐する。
// 選択なし（nil含む）はすべての地点を許容する。
func SelectionContains(sel model.SpatialSelection, p model.LatLng) bool {
	switch s := sel.(type) {
	case nil:
		return true
	case model.SelectionNone:
		return true
	case model.SelectionCircle:
		return WithinRadius(s.Center, s.RadiusMeters, p)
	case model.SelectionRectangle:
		return s.Bounds.Contains(p)
	default:
		return true
	}
}

// BoundaryContains 境界ポリゴン内に座標が含まれるか
func BoundaryContains(boundary orb.MultiPolygon, p model.LatLng) bool {
	if boundary == nil {
		return false
	}
	return planar.MultiPolygonContains(boundary, p.ToPoint())
}

// ComputeBBox 座標群の外接矩形を [minLon, minLat, maxLon, maxLat] で返す。
// 座標がない場合は nil。
func ComputeBBox(coords []model.LatLng) []float64 {
	if len(coords) == 0 {
		return nil
	}

	bound := orb.Bound{Min: coords[0].ToPoint(), Max: coords[0].ToPoint()}
	for _, c := range coords[1:] {
		bound = bound.Extend(c.ToPoint())
	}
	return []float64{bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()}
}

// ComputeCenterRadius 座標群の重心・半径（メートル）・外接矩形を計算する。
// 半径は重心から最遠点までの距離に5kmのマージンを足した値。
// 座標がない場合はフォールバック座標を返し、半径・bboxはゼロ値のまま。
func ComputeCenterRadius(coords []model.LatLng, fallback model.LatLng) (model.LatLng, float64, []float64) {
	if len(coords) == 0 {
		return fallback, 0, nil
	}

	var sumLat, sumLon float64
	for _, c := range coords {
		sumLat += c.Lat
		sumLon += c.Lon
	}
	center := model.LatLng{
		Lat: sumLat / float64(len(coords)),
		Lon: sumLon / float64(len(coords)),
	}

	var maxKm float64
	for _, c := range coords {
		if d := HaversineKm(center, c); d > maxKm {
			maxKm = d
		}
	}
	radiusMeters := (maxKm + 5) * 1000

	return center, radiusMeters, ComputeBBox(coords)
}
