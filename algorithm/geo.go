package algorithm

import "math"

const (
	// 地球半径（英里）
	earthRadiusMiles = 3959
)

// HaversineMiles 计算两点间的球面距离（英里）
// 使用 Haversine 公式；输入非法坐标（NaN/越界）时结果同样为 NaN，由调用方校验
func HaversineMiles(loc1, loc2 Location) float64 {
	lat1 := toRadians(loc1.Latitude)
	lat2 := toRadians(loc2.Latitude)
	deltaLat := toRadians(loc2.Latitude - loc1.Latitude)
	deltaLng := toRadians(loc2.Longitude - loc1.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// RoundMiles 距离保留1位小数（用于展示与落库）
func RoundMiles(miles float64) float64 {
	return math.Round(miles*10) / 10
}

// toRadians 角度转弧度
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
