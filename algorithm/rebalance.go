package algorithm

import (
	"math"
	"sort"
)

const (
	// MaxTransferDistanceMiles 调拨运输距离上限（英里）
	MaxTransferDistanceMiles = 50.0

	// 调拨优先级
	TransferPriorityHigh   = "high"
	TransferPriorityMedium = "medium"
)

// PlanRebalance 按商品分组计算跨门店调拨建议
//
// 对每个商品：
//  1. 将门店划分为缺货集合（stock <= threshold）与过剩集合（stock > 0.8*capacity）
//  2. 缺货门店的需求量 needed = min(capacity-stock, 2*threshold-stock)
//  3. 在 50 英里内选择可用余量为正（stock - 1.5*threshold > 0）的最近过剩门店
//  4. 调拨量 = floor(min(needed, available))，向下取整避免超提
//  5. 立即更新两侧工作副本，保证同一轮内不会重复抽调同一份余量
//
// 结果排序：high 优先级在前，同优先级按距离升序（稳定）
func PlanRebalance(inventory []StockSnapshot) []TransferAction {
	// 工作副本：调拨在副本上即时生效，输入切片不被修改
	working := make([]StockSnapshot, len(inventory))
	copy(working, inventory)

	// 按商品分组，保持首次出现顺序以保证结果可复现
	groups := make(map[int64][]*StockSnapshot)
	var productOrder []int64
	for i := range working {
		item := &working[i]
		if _, ok := groups[item.ProductID]; !ok {
			productOrder = append(productOrder, item.ProductID)
		}
		groups[item.ProductID] = append(groups[item.ProductID], item)
	}

	var actions []TransferAction

	for _, productID := range productOrder {
		group := groups[productID]

		var deficit, surplus []*StockSnapshot
		for _, item := range group {
			switch {
			case item.CurrentStock <= item.ReorderThreshold:
				deficit = append(deficit, item)
			case float64(item.CurrentStock) > float64(item.MaxCapacity)*0.8:
				surplus = append(surplus, item)
			}
		}

		for _, low := range deficit {
			needed := minInt32(
				low.MaxCapacity-low.CurrentStock,
				2*low.ReorderThreshold-low.CurrentStock,
			)
			if needed <= 0 {
				continue
			}

			// 在 50 英里内找最近的有可用余量的过剩门店
			var best *StockSnapshot
			minDistance := math.Inf(1)
			for _, high := range surplus {
				available := float64(high.CurrentStock) - float64(high.ReorderThreshold)*1.5
				if available <= 0 {
					continue
				}

				distance := HaversineMiles(low.Location, high.Location)
				if distance < minDistance && distance < MaxTransferDistanceMiles {
					minDistance = distance
					best = high
				}
			}
			if best == nil {
				continue
			}

			available := float64(best.CurrentStock) - float64(best.ReorderThreshold)*1.5
			amount := int32(math.Floor(math.Min(float64(needed), available)))
			if amount <= 0 {
				continue
			}

			priority := TransferPriorityMedium
			if float64(low.CurrentStock) <= float64(low.ReorderThreshold)*0.5 {
				priority = TransferPriorityHigh
			}

			actions = append(actions, TransferAction{
				ProductID:       productID,
				ProductName:     low.ProductName,
				FromInventoryID: best.InventoryID,
				FromStoreID:     best.StoreID,
				FromStore:       best.StoreName,
				ToInventoryID:   low.InventoryID,
				ToStoreID:       low.StoreID,
				ToStore:         low.StoreName,
				TransferAmount:  amount,
				DistanceMiles:   RoundMiles(minDistance),
				Priority:        priority,
			})

			// 即时更新工作副本，防止同一份余量被重复计入
			best.CurrentStock -= amount
			low.CurrentStock += amount
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		if actions[i].Priority != actions[j].Priority {
			return actions[i].Priority == TransferPriorityHigh
		}
		return actions[i].DistanceMiles < actions[j].DistanceMiles
	})

	return actions
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
