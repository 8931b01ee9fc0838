package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Place 正規化済みの観光スポットエンティティ。
// レジストリのロード時に一度だけ生成され、以後は不変。距離などの注釈は
// フィルタ処理のたびに一時的に計算し、Placeには保存しない。
type Place struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"desc"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	HasCoords   bool      `json:"has_coords"`
	Tags        []string  `json:"tags"`
	Address     string    `json:"address"`
	Region      string    `json:"region"`
	Prefecture  string    `json:"prefecture"`
	City        string    `json:"city"`
	ExternalURL string    `json:"url"`
	Thumbnail   string    `json:"img"`
	Discount    *Discount `json:"discount,omitempty"`
}

// Discount 学割などの割引情報（任意）
type Discount struct {
	Available    bool   `json:"available"`
	StudentPrice int    `json:"student_price"`
	AdultPrice   int    `json:"adult_price"`
	Condition    string `json:"condition"`
	URL          string `json:"url"`
}

// HasDiscount 利用可能な割引があるか
func (p *Place) HasDiscount() bool {
	return p.Discount != nil && p.Discount.Available
}

// Location 座標を返す。座標なしの場合は ok=false。
func (p *Place) Location() (LatLng, bool) {
	if !p.HasCoords {
		return LatLng{}, false
	}
	return LatLng{Lat: p.Lat, Lon: p.Lon}, true
}

// SearchableText テキスト検索の対象となる全フィールドを小文字で連結して返す
func (p *Place) SearchableText() string {
	parts := []string{p.Name, p.Description, p.Address, p.Region, p.Prefecture, p.City}
	parts = append(parts, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// RawPlace バックエンドから受け取る生のスポットレコード。
// スクレイピング由来で欠損・型ゆれが多いため、各フィールドは緩く受ける。
type RawPlace struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Desc       string       `json:"desc"`
	Tags       any          `json:"tags"` // パイプ区切り文字列または文字列配列
	Address    string       `json:"address"`
	Region     string       `json:"region"`
	Prefecture string       `json:"prefecture"`
	City       string       `json:"city"`
	Lat        any          `json:"lat"` // 数値・文字列・null を許容
	Lon        any          `json:"lon"`
	URL        string       `json:"url"`
	Img        string       `json:"img"`
	Discount   *RawDiscount `json:"discount,omitempty"`
}

// RawDiscount 生レコードの割引情報
type RawDiscount struct {
	Available    bool   `json:"available"`
	StudentPrice int    `json:"student_price"`
	AdultPrice   int    `json:"adult_price"`
	Condition    string `json:"condition"`
	URL          string `json:"url"`
}

// NormalizePlace 生レコードをPlaceに正規化する。
// 欠損フィールドはエラーにせず防御的にデフォルト値へ落とす。
// IDが無いレコードは位置インデックスの文字列をIDとする（リロード間の
// グローバル一意性は保証されないので、IDは呼び出し側管理の値として扱う）。
func NormalizePlace(raw RawPlace, index int) Place {
	lat, latOK := parseCoordinate(raw.Lat)
	lon, lonOK := parseCoordinate(raw.Lon)
	hasCoords := latOK && lonOK

	if !hasCoords {
		lat, lon = 0, 0
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = strconv.Itoa(index)
	}

	p := Place{
		ID:          id,
		Name:        raw.Name,
		Description: raw.Desc,
		Lat:         lat,
		Lon:         lon,
		HasCoords:   hasCoords,
		Tags:        parseTags(raw.Tags),
		Address:     raw.Address,
		Region:      raw.Region,
		Prefecture:  raw.Prefecture,
		City:        raw.City,
		ExternalURL: raw.URL,
		Thumbnail:   raw.Img,
	}

	if raw.Discount != nil {
		p.Discount = &Discount{
			Available:    raw.Discount.Available,
			StudentPrice: raw.Discount.StudentPrice,
			AdultPrice:   raw.Discount.AdultPrice,
			Condition:    raw.Discount.Condition,
			URL:          raw.Discount.URL,
		}
	}

	return p
}

// NormalizePlaces 生レコードの一覧をまとめて正規化する
func NormalizePlaces(raws []RawPlace) []Place {
	places := make([]Place, 0, len(raws))
	for i, raw := range raws {
		places = append(places, NormalizePlace(raw, i))
	}
	return places
}

// parseCoordinate 座標値を緩くパースする。
// 空文字・null・非数値・非有限値はすべて「座標なし」とする。
func parseCoordinate(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseTags タグをパイプ区切り文字列または配列からタグ集合に変換する。
// 表示用に出現順を保持しつつ重複を除く。
func parseTags(v any) []string {
	var candidates []string

	switch val := v.(type) {
	case nil:
		return nil
	case string:
		candidates = strings.Split(val, "|")
	case []string:
		candidates = val
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				candidates = append(candidates, s)
			}
		}
	default:
		return nil
	}

	seen := make(map[string]bool, len(candidates))
	var tags []string
	for _, c := range candidates {
		tag := strings.TrimSpace(c)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
