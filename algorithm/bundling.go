package algorithm

import (
	"math"
	"time"
)

const (
	// MaxStopDistanceMiles 单步可接受的最远距离（英里），超过则不再续接
	MaxStopDistanceMiles = 25.0
	// MinutesPerStop 每个停靠点的预估耗时（分钟）
	MinutesPerStop = 30
)

// BundleRoutes 贪心最近邻捆绑：按输入顺序遍历配送员，每个配送员从未分配
// 订单池中反复挑选距其当前位置最近的订单，直到容量耗尽、订单耗尽或最近
// 候选超出 25 英里。距离相等时保留先出现的候选（输入顺序稳定）。
//
// 纯内存计算；订单状态流转与落库由调用方的事务完成。
func BundleRoutes(agents []Agent, orders []PendingOrder, now time.Time) BundleResult {
	assigned := make([]bool, len(orders))
	assignedCount := 0

	var routes []PlannedRoute
	var assignedIDs []int64

	for _, agent := range agents {
		if assignedCount == len(orders) {
			break
		}

		current := agent.Location
		remaining := agent.MaxCapacity

		route := PlannedRoute{
			AgentID:   agent.AgentID,
			AgentName: agent.Name,
		}
		totalDistance := 0.0

		for remaining > 0 && assignedCount < len(orders) {
			// 在未分配订单中找距当前位置最近的一单
			nearestIdx := -1
			minDistance := math.Inf(1)
			for i, order := range orders {
				if assigned[i] {
					continue
				}
				distance := HaversineMiles(current, order.Location)
				if distance < minDistance {
					minDistance = distance
					nearestIdx = i
				}
			}

			// 最近候选也超出配送半径，该配送员的路线到此为止
			if nearestIdx < 0 || minDistance >= MaxStopDistanceMiles {
				break
			}

			order := orders[nearestIdx]
			route.Stops = append(route.Stops, PlannedStop{
				OrderID:              order.OrderID,
				CustomerName:         order.CustomerName,
				CustomerAddress:      order.CustomerAddress,
				TotalAmount:          order.TotalAmount,
				Location:             order.Location,
				DistanceFromPrevious: RoundMiles(minDistance),
				EstimatedArrival:     now.Add(time.Duration(len(route.Stops)+1) * MinutesPerStop * time.Minute),
			})
			totalDistance += minDistance
			route.EstimatedDuration += MinutesPerStop

			assigned[nearestIdx] = true
			assignedCount++
			assignedIDs = append(assignedIDs, order.OrderID)

			current = order.Location
			remaining--
		}

		// 只保留至少有一个停靠点的路线
		if len(route.Stops) > 0 {
			route.TotalDistance = RoundMiles(totalDistance)
			routes = append(routes, route)
		}
	}

	var unassignedIDs []int64
	for i, order := range orders {
		if !assigned[i] {
			unassignedIDs = append(unassignedIDs, order.OrderID)
		}
	}

	return BundleResult{
		Routes:           routes,
		AssignedOrders:   assignedIDs,
		UnassignedOrders: unassignedIDs,
	}
}
