package model

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LatLng 緯度経度を表す基本的な型
type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ToPoint orb.Point（経度・緯度の順）に変換
func (l LatLng) ToPoint() orb.Point {
	return orb.Point{l.Lon, l.Lat}
}

// Bounds 矩形範囲（地図ビューポートや矩形選択で使用）
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Contains 指定座標が矩形内（境界含む）にあるかを判定
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// ToOrbBound orb.Bound に変換
func (b Bounds) ToOrbBound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}
}

// BoundaryResponse GET /api/geo-boundary のレスポンス形式
// geojson は Polygon / MultiPolygon / null のいずれか
type BoundaryResponse struct {
	GeoJSON json.RawMessage `json:"geojson"`
}

// BoundaryFromGeoJSON GeoJSONのPolygon/MultiPolygonをorb.MultiPolygonに変換する。
// null・空データの場合は nil を返す（境界なし扱い）。
func BoundaryFromGeoJSON(raw json.RawMessage) (orb.MultiPolygon, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	geom, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, fmt.Errorf("境界GeoJSONのパース失敗: %w", err)
	}

	switch g := geom.Geometry().(type) {
	case orb.Polygon:
		return orb.MultiPolygon{g}, nil
	case orb.MultiPolygon:
		return g, nil
	default:
		return nil, fmt.Errorf("境界GeoJSONの型が不正です: %s", geom.Type)
	}
}

// BoundaryToGeoJSON orb.MultiPolygon を GeoJSON に変換する（レスポンス生成用）
func BoundaryToGeoJSON(mp orb.MultiPolygon) (json.RawMessage, error) {
	if mp == nil {
		return json.RawMessage("null"), nil
	}
	data, err := geojson.NewGeometry(mp).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("境界GeoJSONの生成失敗: %w", err)
	}
	return data, nil
}
