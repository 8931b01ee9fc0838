package model

// SpatialSelection 地図上に直接描かれた円または矩形の選択範囲。
// 行政区分スコープ（GeoScope）とは独立で、フィルタでは両方が同時に適用される。
// タグ付きユニオンとして表現し、包含判定側で網羅的に分岐する。
type SpatialSelection interface {
	isSpatialSelection()
}

// SelectionNone 選択なし。すべての地点を許容する。
type SelectionNone struct{}

// SelectionCircle 中心と半径（メートル）で指定する円選択
type SelectionCircle struct {
	Center       LatLng
	RadiusMeters float64
}

// SelectionRectangle 矩形ドラッグで指定する範囲選択
type SelectionRectangle struct {
	Bounds Bounds
}

func (SelectionNone) isSpatialSelection()      {}
func (SelectionCircle) isSpatialSelection()    {}
func (SelectionRectangle) isSpatialSelection() {}
