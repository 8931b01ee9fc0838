package service

import (
	"SpotMap-App/internal/domain/helper"
	"SpotMap-App/internal/domain/model"
)

const (
	defaultRegionZoom   = 6
	defaultRegionRadius = 300000
	minCityRadiusMeters = 20000
	minCityZoom         = 11
)

type prefCityKey struct {
	pref string
	city string
}

// BuildGeoTree カタログの座標から地方→都道府県→市区町村の階層ツリーを構築する。
// 県・市のノードは実際のスポット座標から中心・半径・bboxを計算し、
// スポットのない県は代表座標メタデータへフォールバックする。
func BuildGeoTree(places []model.Place) model.GeoTree {
	coordsByPref := make(map[string][]model.LatLng)
	coordsByCity := make(map[prefCityKey][]model.LatLng)

	for _, p := range places {
		loc, ok := p.Location()
		if !ok || p.Prefecture == "" {
			continue
		}
		coordsByPref[p.Prefecture] = append(coordsByPref[p.Prefecture], loc)
		if p.City != "" {
			key := prefCityKey{pref: p.Prefecture, city: p.City}
			coordsByCity[key] = append(coordsByCity[key], loc)
		}
	}

	tree := model.GeoTree{}
	regionCenters := make(map[string][]model.LatLng)

	for _, prefName := range model.PrefectureNames {
		info := model.PrefRegionInfo[prefName]
		regionKey := info.Region

		regionNode, ok := tree[regionKey]
		if !ok {
			preset, hasPreset := model.RegionPreset[regionKey]
			if !hasPreset {
				preset = model.RegionMeta{Zoom: defaultRegionZoom, RadiusMeters: defaultRegionRadius}
			}
			regionNode = &model.RegionNode{
				Center: [2]float64{info.Center.Lat, info.Center.Lon},
				Zoom:   preset.Zoom,
				Radius: preset.RadiusMeters,
				Prefs:  make(map[string]*model.PrefNode),
			}
			tree[regionKey] = regionNode
		}
		regionCenters[regionKey] = append(regionCenters[regionKey], info.Center)

		prefCenter, prefRadius, prefBBox := helper.ComputeCenterRadius(coordsByPref[prefName], info.Center)
		if prefRadius == 0 {
			prefRadius = info.RadiusMeters
		}

		regionNode.Prefs[prefName] = &model.PrefNode{
			Center: [2]float64{prefCenter.Lat, prefCenter.Lon},
			Zoom:   info.Zoom,
			Radius: prefRadius,
			BBox:   prefBBox,
			Cities: make(map[string]*model.CityNode),
		}
	}

	// 地方の中心は所属県の代表座標の平均
	for regionKey, centers := range regionCenters {
		if len(centers) == 0 {
			continue
		}
		var sumLat, sumLon float64
		for _, c := range centers {
			sumLat += c.Lat
			sumLon += c.Lon
		}
		tree[regionKey].Center = [2]float64{
			sumLat / float64(len(centers)),
			sumLon / float64(len(centers)),
		}
	}

	for key, coords := range coordsByCity {
		info, ok := model.PrefRegionInfo[key.pref]
		if !ok {
			continue
		}
		regionNode, ok := tree[info.Region]
		if !ok {
			continue
		}
		prefNode, ok := regionNode.Prefs[key.pref]
		if !ok {
			continue
		}

		fallback := model.CenterLatLng(prefNode.Center)
		center, radius, bbox := helper.ComputeCenterRadius(coords, fallback)
		if radius == 0 {
			radius = prefNode.Radius / 3
			if radius < minCityRadiusMeters {
				radius = minCityRadiusMeters
			}
		}

		zoom := prefNode.Zoom
		if zoom < minCityZoom {
			zoom = minCityZoom
		}

		prefNode.Cities[key.city] = &model.CityNode{
			Center: [2]float64{center.Lat, center.Lon},
			Zoom:   zoom,
			Radius: radius,
			BBox:   bbox,
		}
	}

	return tree
}
