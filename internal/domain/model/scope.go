package model

// ScopeLevel 行政区分スコープの段階
type ScopeLevel string

const (
	ScopeLevelNone   ScopeLevel = "none"
	ScopeLevelRegion ScopeLevel = "region"
	ScopeLevelPref   ScopeLevel = "pref"
	ScopeLevelCity   ScopeLevel = "city"
)

// GeoScope 地方→都道府県→市区町村のカスケード選択を解決した結果。
// 有効な組み合わせは｛選択なし・地方のみ・地方+県・地方+県+市｝のいずれか一つで、
// 粗いレベルを選び直すと細かいレベルの選択はすべてクリアされる。
type GeoScope struct {
	Level     ScopeLevel `json:"level"`
	Key       string     `json:"key"` // 選択中レベルの表示ラベル
	RegionKey string     `json:"region_key"`
	PrefKey   string     `json:"pref_key"`
	CityKey   string     `json:"city_key"`

	// ビューポートフィット用のヒント（境界ポリゴン > bbox > center+zoom > 円の優先順）
	Center       *LatLng `json:"center,omitempty"`
	RadiusMeters float64 `json:"radius,omitempty"`
	Zoom         int     `json:"zoom,omitempty"`
	BBox         *Bounds `json:"bbox,omitempty"`
}

// IsActive 何らかのスコープが選択されているか
func (s GeoScope) IsActive() bool {
	return s.Level != ScopeLevelNone
}

// HasCircle 円形の範囲ヒントを持つか
func (s GeoScope) HasCircle() bool {
	return s.Center != nil && s.RadiusMeters > 0
}

// ActiveKeys スコープの各レベルで有効なキーを粗い順に返す（ラベル照合用）
func (s GeoScope) ActiveKeys() []string {
	var keys []string
	if s.RegionKey != "" {
		keys = append(keys, s.RegionKey)
	}
	if s.PrefKey != "" {
		keys = append(keys, s.PrefKey)
	}
	if s.CityKey != "" {
		keys = append(keys, s.CityKey)
	}
	return keys
}

// GeoTree GET /api/geo が返す地域階層ツリー。
// 地方 → { prefs: { 県 → { cities: { 市 → {...} } } } } の入れ子構造。
type GeoTree map[string]*RegionNode

// RegionNode 地方ノード
type RegionNode struct {
	Center [2]float64           `json:"center"` // [lat, lon]
	Zoom   int                  `json:"zoom"`
	Radius float64              `json:"radius"`
	Prefs  map[string]*PrefNode `json:"prefs"`
}

// PrefNode 都道府県ノード
type PrefNode struct {
	Center [2]float64           `json:"center"`
	Zoom   int                  `json:"zoom"`
	Radius float64              `json:"radius"`
	BBox   []float64            `json:"bbox"` // [minLon, minLat, maxLon, maxLat]
	Cities map[string]*CityNode `json:"cities"`
}

// CityNode 市区町村ノード
type CityNode struct {
	Center [2]float64 `json:"center"`
	Zoom   int        `json:"zoom"`
	Radius float64    `json:"radius"`
	BBox   []float64  `json:"bbox"`
}

// CenterLatLng center配列をLatLngに変換
func CenterLatLng(center [2]float64) LatLng {
	return LatLng{Lat: center[0], Lon: center[1]}
}

// BBoxBounds bbox配列（[minLon, minLat, maxLon, maxLat]）をBoundsに変換。
// 長さが不足している場合は nil。
func BBoxBounds(bbox []float64) *Bounds {
	if len(bbox) < 4 {
		return nil
	}
	return &Bounds{
		MinLon: bbox[0],
		MinLat: bbox[1],
		MaxLon: bbox[2],
		MaxLat: bbox[3],
	}
}
