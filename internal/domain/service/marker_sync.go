package service

import (
	"sort"

	"SpotMap-App/internal/domain/model"
)

// MapSurface 外部の地図描画面。マーカーの追加・削除指示のみを受け取り、
// ビジネスロジックは一切持たない。
type MapSurface interface {
	AddMarkers(places []model.Place)
	RemoveMarkers(ids []string)
}

// MarkerSynchronizer 描画済みマーカー集合と可視集合の差分を取り、
// 地図面に最小限の追加・削除指示を出す。
type MarkerSynchronizer struct {
	surface  MapSurface
	rendered map[string]bool
}

// NewMarkerSynchronizer MarkerSynchronizerの新しいインスタンスを作成
func NewMarkerSynchronizer(surface MapSurface) *MarkerSynchronizer {
	return &MarkerSynchronizer{
		surface:  surface,
		rendered: make(map[string]bool),
	}
}

// Sync 可視スポット一覧を受け取り、差分だけを地図面へ指示する。
// 座標なしスポットはマーカー対象外。同一集合での再呼び出しは何も指示しない（冪等）。
func (m *MarkerSynchronizer) Sync(visible []model.Place) {
	target := make(map[string]bool, len(visible))
	var toAdd []model.Place

	for _, p := range visible {
		if !p.HasCoords {
			continue
		}
		if target[p.ID] {
			continue
		}
		target[p.ID] = true
		if !m.rendered[p.ID] {
			toAdd = append(toAdd, p)
		}
	}

	var toRemove []string
	for id := range m.rendered {
		if !target[id] {
			toRemove = append(toRemove, id)
		}
	}
	sort.Strings(toRemove)

	if len(toRemove) > 0 {
		m.surface.RemoveMarkers(toRemove)
	}
	if len(toAdd) > 0 {
		m.surface.AddMarkers(toAdd)
	}

	m.rendered = target
}

// Reset 描画済み集合を忘れる（地図面の再初期化時に使用）
func (m *MarkerSynchronizer) Reset() {
	m.rendered = make(map[string]bool)
}

// RenderedCount 現在描画中のマーカー数
func (m *MarkerSynchronizer) RenderedCount() int {
	return len(m.rendered)
}
