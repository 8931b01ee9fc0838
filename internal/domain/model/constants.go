package model

// CityAllArea 市区町村セレクタの「全域」選択。市レベルの絞り込みなし扱いとする。
const CityAllArea = "全域"

// PrefMeta 都道府県の代表座標メタデータ（県庁所在地付近）
type PrefMeta struct {
	Region       string
	Center       LatLng
	Zoom         int
	RadiusMeters float64
}

// RegionMeta 地方プリセット（ズーム・半径）
type RegionMeta struct {
	Zoom         int
	RadiusMeters float64
}

// PrefRegionInfo 都道府県→地方・代表座標のマッピング
var PrefRegionInfo = map[string]PrefMeta{
	"北海道":  {Region: "北海道", Center: LatLng{43.06417, 141.34694}, Zoom: 7, RadiusMeters: 280000},
	"青森県":  {Region: "東北", Center: LatLng{40.82444, 140.74}, Zoom: 8, RadiusMeters: 120000},
	"岩手県":  {Region: "東北", Center: LatLng{39.70361, 141.1525}, Zoom: 8, RadiusMeters: 130000},
	"宮城県":  {Region: "東北", Center: LatLng{38.26889, 140.87194}, Zoom: 8, RadiusMeters: 110000},
	"秋田県":  {Region: "東北", Center: LatLng{39.71861, 140.1025}, Zoom: 8, RadiusMeters: 120000},
	"山形県":  {Region: "東北", Center: LatLng{38.24056, 140.36333}, Zoom: 8, RadiusMeters: 110000},
	"福島県":  {Region: "東北", Center: LatLng{37.75, 140.46778}, Zoom: 8, RadiusMeters: 140000},
	"茨城県":  {Region: "関東", Center: LatLng{36.34139, 140.44667}, Zoom: 8, RadiusMeters: 110000},
	"栃木県":  {Region: "関東", Center: LatLng{36.56583, 139.88361}, Zoom: 8, RadiusMeters: 110000},
	"群馬県":  {Region: "関東", Center: LatLng{36.39111, 139.06083}, Zoom: 8, RadiusMeters: 120000},
	"埼玉県":  {Region: "関東", Center: LatLng{35.85694, 139.64889}, Zoom: 9, RadiusMeters: 90000},
	"千葉県":  {Region: "関東", Center: LatLng{35.60472, 140.12333}, Zoom: 8, RadiusMeters: 110000},
	"東京都":  {Region: "関東", Center: LatLng{35.68944, 139.69167}, Zoom: 9, RadiusMeters: 90000},
	"神奈川県": {Region: "関東", Center: LatLng{35.44778, 139.6425}, Zoom: 9, RadiusMeters: 90000},
	"新潟県":  {Region: "中部", Center: LatLng{37.90222, 139.02361}, Zoom: 8, RadiusMeters: 150000},
	"富山県":  {Region: "中部", Center: LatLng{36.69528, 137.21139}, Zoom: 8, RadiusMeters: 110000},
	"石川県":  {Region: "中部", Center: LatLng{36.59444, 136.62556}, Zoom: 8, RadiusMeters: 110000},
	"福井県":  {Region: "中部", Center: LatLng{36.06411, 136.21944}, Zoom: 8, RadiusMeters: 110000},
	"山梨県":  {Region: "中部", Center: LatLng{35.66389, 138.56833}, Zoom: 9, RadiusMeters: 90000},
	"長野県":  {Region: "中部", Center: LatLng{36.65139, 138.18111}, Zoom: 8, RadiusMeters: 130000},
	"岐阜県":  {Region: "中部", Center: LatLng{35.39111, 136.72222}, Zoom: 8, RadiusMeters: 120000},
	"静岡県":  {Region: "中部", Center: LatLng{34.97694, 138.38306}, Zoom: 8, RadiusMeters: 130000},
	"愛知県":  {Region: "中部", Center: LatLng{35.18028, 136.90667}, Zoom: 8, RadiusMeters: 110000},
	"三重県":  {Region: "近畿", Center: LatLng{34.73028, 136.50861}, Zoom: 8, RadiusMeters: 120000},
	"滋賀県":  {Region: "近畿", Center: LatLng{35.00444, 135.86833}, Zoom: 9, RadiusMeters: 90000},
	"京都府":  {Region: "近畿", Center: LatLng{35.01167, 135.76833}, Zoom: 9, RadiusMeters: 90000},
	"大阪府":  {Region: "近畿", Center: LatLng{34.68639, 135.52}, Zoom: 9, RadiusMeters: 90000},
	"兵庫県":  {Region: "近畿", Center: LatLng{34.69139, 135.18306}, Zoom: 8, RadiusMeters: 120000},
	"奈良県":  {Region: "近畿", Center: LatLng{34.68528, 135.83278}, Zoom: 9, RadiusMeters: 90000},
	"和歌山県": {Region: "近畿", Center: LatLng{34.22611, 135.1675}, Zoom: 8, RadiusMeters: 120000},
	"鳥取県":  {Region: "中国", Center: LatLng{35.50361, 134.23833}, Zoom: 8, RadiusMeters: 110000},
	"島根県":  {Region: "中国", Center: LatLng{35.47222, 133.05056}, Zoom: 8, RadiusMeters: 130000},
	"岡山県":  {Region: "中国", Center: LatLng{34.66167, 133.935}, Zoom: 8, RadiusMeters: 110000},
	"広島県":  {Region: "中国", Center: LatLng{34.39639, 132.45944}, Zoom: 8, RadiusMeters: 120000},
	"山口県":  {Region: "中国", Center: LatLng{34.18583, 131.47139}, Zoom: 8, RadiusMeters: 130000},
	"徳島県":  {Region: "四国", Center: LatLng{34.06583, 134.55944}, Zoom: 9, RadiusMeters: 90000},
	"香川県":  {Region: "四国", Center: LatLng{34.34028, 134.04333}, Zoom: 9, RadiusMeters: 90000},
	"愛媛県":  {Region: "四国", Center: LatLng{33.84167, 132.76611}, Zoom: 8, RadiusMeters: 110000},
	"高知県":  {Region: "四国", Center: LatLng{33.55889, 133.53111}, Zoom: 8, RadiusMeters: 120000},
	"福岡県":  {Region: "九州・沖縄", Center: LatLng{33.60639, 130.41806}, Zoom: 8, RadiusMeters: 120000},
	"佐賀県":  {Region: "九州・沖縄", Center: LatLng{33.24944, 130.29889}, Zoom: 9, RadiusMeters: 90000},
	"長崎県":  {Region: "九州・沖縄", Center: LatLng{32.74472, 129.87361}, Zoom: 8, RadiusMeters: 130000},
	"熊本県":  {Region: "九州・沖縄", Center: LatLng{32.78972, 130.74167}, Zoom: 8, RadiusMeters: 120000},
	"大分県":  {Region: "九州・沖縄", Center: LatLng{33.23806, 131.6125}, Zoom: 8, RadiusMeters: 110000},
	"宮崎県":  {Region: "九州・沖縄", Center: LatLng{31.90778, 131.42028}, Zoom: 8, RadiusMeters: 130000},
	"鹿児島県": {Region: "九州・沖縄", Center: LatLng{31.56028, 130.55806}, Zoom: 8, RadiusMeters: 140000},
	"沖縄県":  {Region: "九州・沖縄", Center: LatLng{26.2125, 127.68111}, Zoom: 8, RadiusMeters: 120000},
}

// RegionPreset 地方単位のズーム・半径プリセット
var RegionPreset = map[string]RegionMeta{
	"北海道":   {Zoom: 6, RadiusMeters: 600000},
	"東北":    {Zoom: 6, RadiusMeters: 360000},
	"関東":    {Zoom: 6, RadiusMeters: 260000},
	"中部":    {Zoom: 6, RadiusMeters: 360000},
	"近畿":    {Zoom: 6, RadiusMeters: 260000},
	"中国":    {Zoom: 6, RadiusMeters: 280000},
	"四国":    {Zoom: 6, RadiusMeters: 200000},
	"九州・沖縄": {Zoom: 6, RadiusMeters: 360000},
}

// PrefectureNames 都道府県名の一覧（北から南の順。ツリー構築の決定的な走査順として使用）
var PrefectureNames = []string{
	"北海道",
	"青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県", "静岡県", "愛知県",
	"三重県", "滋賀県", "京都府", "大阪府", "兵庫県", "奈良県", "和歌山県",
	"鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県",
	"福岡県", "佐賀県", "長崎県", "熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
}
