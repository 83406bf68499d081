package algorithm

// 库存流动性状态档位
const (
	LiquidityCritical    = "critical"
	LiquidityLow         = "low"
	LiquidityOptimal     = "optimal"
	LiquidityOverstocked = "overstocked"
)

// LiquidityResult 单条库存记录的流动性评分
type LiquidityResult struct {
	Score  float64
	Status string
}

// LiquidityScore 根据当前库存、补货阈值和容量上限给出流动性档位
// 档位按声明顺序匹配，低侧边界取闭区间：
//   - stock <= 0.5*threshold  -> critical (0.2)
//   - stock <= threshold      -> low (0.4)
//   - stock/capacity <= 0.8   -> optimal (0.8)
//   - 其余                     -> overstocked (0.6)
func LiquidityScore(currentStock, reorderThreshold, maxCapacity int32) LiquidityResult {
	// 容量为0的记录视为数据异常，按最危险档位处理
	if maxCapacity <= 0 {
		return LiquidityResult{Score: 0.2, Status: LiquidityCritical}
	}

	stock := float64(currentStock)
	threshold := float64(reorderThreshold)
	ratio := stock / float64(maxCapacity)

	switch {
	case stock <= threshold*0.5:
		return LiquidityResult{Score: 0.2, Status: LiquidityCritical}
	case stock <= threshold:
		return LiquidityResult{Score: 0.4, Status: LiquidityLow}
	case ratio <= 0.8:
		return LiquidityResult{Score: 0.8, Status: LiquidityOptimal}
	default:
		return LiquidityResult{Score: 0.6, Status: LiquidityOverstocked}
	}
}
