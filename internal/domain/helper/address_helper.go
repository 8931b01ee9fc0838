package helper

import (
	"regexp"
	"strings"

	"SpotMap-App/internal/domain/model"
)

var (
	postalCodePattern = regexp.MustCompile(`〒\s*\d{3}-?\d{4}`)
	cityPattern       = regexp.MustCompile(`([\w一-龠ぁ-んァ-ヶー]+?(?:市|区|町|村|郡\s*[\w一-龠ぁ-んァ-ヶー]+?(?:町|村)?))`)
)

// ExtractPrefCity 住所文字列から都道府県名と市区町村名を抽出する。
// スクレイピング由来の住所は表記ゆれが多いので、郵便番号を除去したうえで
// 都道府県名の部分一致→市区町村パターンの順で緩く探す。見つからない場合は空文字。
func ExtractPrefCity(address string) (string, string) {
	if address == "" {
		return "", ""
	}

	cleaned := postalCodePattern.ReplaceAllString(address, "")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "　", " "))

	var pref string
	for _, name := range model.PrefectureNames {
		if strings.Contains(cleaned, name) {
			pref = name
			break
		}
	}
	if pref == "" {
		return "", ""
	}

	rest := cleaned[strings.Index(cleaned, pref)+len(pref):]
	rest = strings.TrimSpace(rest)

	city := ""
	if m := cityPattern.FindString(rest); m != "" {
		city = strings.ReplaceAll(m, " ", "")
	}

	return pref, city
}

// EnrichHierarchy 住所から地域ラベル（地方・県・市）を補完する。
// 生データで既にラベルが付いているフィールドは上書きしない。
func EnrichHierarchy(p *model.Place) {
	if p.Prefecture == "" || p.City == "" {
		pref, city := ExtractPrefCity(p.Address)
		if p.Prefecture == "" {
			p.Prefecture = pref
		}
		if p.City == "" {
			p.City = city
		}
	}

	if p.Region == "" {
		if info, ok := model.PrefRegionInfo[p.Prefecture]; ok {
			p.Region = info.Region
		}
	}
}
