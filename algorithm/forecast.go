package algorithm

import "math"

// ForecastInput 单个门店-商品组合的需求预测输入
type ForecastInput struct {
	StoreID            int64
	ProductID          int64
	Category           string
	StoreCapacity      int32
	HistoricalQuantity int32 // 近30天已送达订单的商品总件数
	SampleCount        int32 // 参与统计的订单条目数，用于置信度
}

// Forecast 单日需求预测结果
type Forecast struct {
	StoreID         int64
	ProductID       int64
	PredictedDemand int32
	ConfidenceScore float64
}

// 品类需求系数：生鲜需求偏高，常温干货偏低
var categoryMultipliers = map[string]float64{
	"Fresh Produce": 1.2,
	"Dairy":         1.1,
	"Meat":          0.9,
	"Pantry":        0.8,
}

// referenceStoreCapacity 门店规模归一化基准
const referenceStoreCapacity = 2000.0

// ForecastDemand 基于近30天日均销量推算次日需求
//
// predicted = max(1, round(日均销量 × 品类系数 × 门店规模系数 × jitter))
// jitter 为市场波动因子（调用方传入 0.8~1.2 的随机值，便于测试时固定）
// confidence = min(0.95, 0.5 + 样本数×0.05)，保留2位小数
func ForecastDemand(in ForecastInput, jitter float64) Forecast {
	avgDailyDemand := float64(in.HistoricalQuantity) / 30.0

	categoryMultiplier := 1.0
	if m, ok := categoryMultipliers[in.Category]; ok {
		categoryMultiplier = m
	}

	storeSizeMultiplier := float64(in.StoreCapacity) / referenceStoreCapacity

	predicted := math.Round(avgDailyDemand * categoryMultiplier * storeSizeMultiplier * jitter)
	if predicted < 1 {
		predicted = 1
	}

	confidence := math.Min(0.95, 0.5+float64(in.SampleCount)*0.05)

	return Forecast{
		StoreID:         in.StoreID,
		ProductID:       in.ProductID,
		PredictedDemand: int32(predicted),
		ConfidenceScore: math.Round(confidence*100) / 100,
	}
}
