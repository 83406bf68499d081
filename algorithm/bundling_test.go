package algorithm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 以 (32.7767, -96.797) 为原点，纬度 0.0145 度约 1 英里
func orderAtMiles(id int64, miles float64) PendingOrder {
	return PendingOrder{
		OrderID:      id,
		CustomerName: "Customer",
		Location:     Location{Latitude: 32.7767 + miles*0.0145, Longitude: -96.797},
	}
}

func TestBundleRoutesCapacityAndRadius(t *testing.T) {
	now := time.Now()

	agents := []Agent{
		{
			AgentID:     1,
			Name:        "Agent 1",
			Location:    Location{Latitude: 32.7767, Longitude: -96.797},
			MaxCapacity: 2,
		},
	}
	orders := []PendingOrder{
		orderAtMiles(101, 2),
		orderAtMiles(102, 1),
		orderAtMiles(103, 40), // 超出 25 英里半径
	}

	result := BundleRoutes(agents, orders, now)

	require.Len(t, result.Routes, 1)
	route := result.Routes[0]
	require.Len(t, route.Stops, 2)

	// 贪心最近邻：1 英里的订单先于 2 英里的订单
	require.Equal(t, int64(102), route.Stops[0].OrderID)
	require.Equal(t, int64(101), route.Stops[1].OrderID)

	// 40 英里的订单不可达，保持未分配
	require.Equal(t, []int64{103}, result.UnassignedOrders)
	require.ElementsMatch(t, []int64{101, 102}, result.AssignedOrders)

	// 每停靠点 30 分钟
	require.Equal(t, int32(60), route.EstimatedDuration)
	require.Equal(t, now.Add(30*time.Minute), route.Stops[0].EstimatedArrival)
	require.Equal(t, now.Add(60*time.Minute), route.Stops[1].EstimatedArrival)
}

func TestBundleRoutesEmptyInputs(t *testing.T) {
	now := time.Now()

	result := BundleRoutes(nil, nil, now)
	require.Empty(t, result.Routes)
	require.Empty(t, result.AssignedOrders)
	require.Empty(t, result.UnassignedOrders)

	// 没有可用配送员时所有订单保持未分配
	orders := []PendingOrder{orderAtMiles(101, 1)}
	result = BundleRoutes(nil, orders, now)
	require.Empty(t, result.Routes)
	require.Equal(t, []int64{101}, result.UnassignedOrders)
}

func TestBundleRoutesTieKeepsFirstCandidate(t *testing.T) {
	now := time.Now()

	agents := []Agent{
		{
			AgentID:     1,
			Location:    Location{Latitude: 32.7767, Longitude: -96.797},
			MaxCapacity: 1,
		},
	}
	// 两单与配送员距离完全相同（同一坐标）
	same := Location{Latitude: 32.7912, Longitude: -96.797}
	orders := []PendingOrder{
		{OrderID: 201, Location: same},
		{OrderID: 202, Location: same},
	}

	result := BundleRoutes(agents, orders, now)
	require.Len(t, result.Routes, 1)
	require.Equal(t, int64(201), result.Routes[0].Stops[0].OrderID)
	require.Equal(t, []int64{202}, result.UnassignedOrders)
}

func TestBundleRoutesMultipleAgents(t *testing.T) {
	now := time.Now()

	agents := []Agent{
		{
			AgentID:     1,
			Location:    Location{Latitude: 32.7767, Longitude: -96.797},
			MaxCapacity: 1,
		},
		{
			AgentID:     2,
			Location:    Location{Latitude: 32.7767, Longitude: -96.797},
			MaxCapacity: 5,
		},
	}
	orders := []PendingOrder{
		orderAtMiles(301, 1),
		orderAtMiles(302, 2),
		orderAtMiles(303, 3),
	}

	result := BundleRoutes(agents, orders, now)
	require.Len(t, result.Routes, 2)

	// 第一个配送员容量 1，拿走最近的一单；其余归第二个
	require.Len(t, result.Routes[0].Stops, 1)
	require.Equal(t, int64(301), result.Routes[0].Stops[0].OrderID)
	require.Len(t, result.Routes[1].Stops, 2)
	require.Empty(t, result.UnassignedOrders)
}

func TestBundleRoutesTotalDistanceRounded(t *testing.T) {
	now := time.Now()

	agents := []Agent{
		{
			AgentID:     1,
			Location:    Location{Latitude: 32.7767, Longitude: -96.797},
			MaxCapacity: 3,
		},
	}
	orders := []PendingOrder{
		orderAtMiles(401, 1),
		orderAtMiles(402, 2),
	}

	result := BundleRoutes(agents, orders, now)
	require.Len(t, result.Routes, 1)

	route := result.Routes[0]
	// 累计约 2 英里（1 + 1），保留1位小数
	require.InDelta(t, 2.0, route.TotalDistance, 0.2)
	require.Equal(t, route.TotalDistance, RoundMiles(route.TotalDistance))
}
